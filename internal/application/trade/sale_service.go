package trade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/partner"
	"github.com/visionassist/backend/internal/domain/shared"
	"github.com/visionassist/backend/internal/domain/trade"
)

// SaleService handles sale-related business operations. Recording a sale
// marks the sold device connected; deleting the sale releases it again.
type SaleService struct {
	saleRepo   trade.SaleRepository
	deviceRepo catalog.DeviceRepository
	clientRepo partner.ClientRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRepository, deviceRepo catalog.DeviceRepository, clientRepo partner.ClientRepository) *SaleService {
	return &SaleService{
		saleRepo:   saleRepo,
		deviceRepo: deviceRepo,
		clientRepo: clientRepo,
	}
}

// Create records a new sale, capturing the device price at the time of sale
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	device, err := s.deviceRepo.FindByID(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}

	var soldAt time.Time
	if req.SoldAt != nil {
		soldAt = *req.SoldAt
	}
	sale, err := trade.NewSale(device.ID, client.ID, device.Price, soldAt)
	if err != nil {
		return nil, err
	}
	sale.UserID = req.UserID
	sale.Notes = req.Notes

	if err := device.MarkConnected(); err != nil {
		return nil, err
	}
	if err := s.deviceRepo.Save(ctx, device); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales with filtering and pagination
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) ([]SaleResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}
	if filter.DeviceID != "" {
		domainFilter.Filters["device_id"] = filter.DeviceID
	}

	sales, err := s.saleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.saleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSaleResponses(sales), total, nil
}

// Update updates a sale's status or notes
func (s *SaleService) Update(ctx context.Context, saleID uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch trade.SaleStatus(*req.Status) {
		case trade.SaleStatusRefunded:
			if err := sale.Refund(); err != nil {
				return nil, err
			}
		case trade.SaleStatusCancelled:
			if err := sale.Cancel(); err != nil {
				return nil, err
			}
		case trade.SaleStatusCompleted:
			if sale.Status != trade.SaleStatusCompleted {
				return nil, shared.NewDomainError("INVALID_STATE", "Sales cannot be reverted to completed")
			}
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown sale status")
		}
	}
	if req.Notes != nil {
		sale.Notes = *req.Notes
		sale.Touch()
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Delete removes a sale and releases the sold device back to available
func (s *SaleService) Delete(ctx context.Context, saleID uuid.UUID) error {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return err
	}

	device, err := s.deviceRepo.FindByID(ctx, sale.DeviceID)
	if err == nil {
		device.Release()
		if err := s.deviceRepo.Save(ctx, device); err != nil {
			return err
		}
	} else if !isNotFound(err) {
		return err
	}

	return s.saleRepo.Delete(ctx, saleID)
}

func isNotFound(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}
