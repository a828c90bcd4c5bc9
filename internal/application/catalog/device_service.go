package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/shared"
)

// DeviceService handles device-related business operations
type DeviceService struct {
	deviceRepo catalog.DeviceRepository
}

// NewDeviceService creates a new DeviceService
func NewDeviceService(deviceRepo catalog.DeviceRepository) *DeviceService {
	return &DeviceService{deviceRepo: deviceRepo}
}

// Create registers a new device
func (s *DeviceService) Create(ctx context.Context, req CreateDeviceRequest) (*DeviceResponse, error) {
	serial := strings.ToUpper(strings.TrimSpace(req.SerialNumber))
	exists, err := s.deviceRepo.ExistsBySerialNumber(ctx, serial)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Device with this serial number already exists")
	}

	device, err := catalog.NewDevice(req.SerialNumber, catalog.DeviceType(req.Type), req.Price)
	if err != nil {
		return nil, err
	}
	if req.ManufacturingCost != nil {
		if err := device.SetPricing(req.Price, req.ManufacturingCost); err != nil {
			return nil, err
		}
	}
	device.FirmwareVersion = req.FirmwareVersion
	device.Notes = req.Notes

	if err := s.deviceRepo.Save(ctx, device); err != nil {
		return nil, err
	}

	response := ToDeviceResponse(device)
	return &response, nil
}

// GetByID retrieves a device by ID
func (s *DeviceService) GetByID(ctx context.Context, deviceID uuid.UUID) (*DeviceResponse, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	response := ToDeviceResponse(device)
	return &response, nil
}

// List retrieves devices with filtering and pagination
func (s *DeviceService) List(ctx context.Context, filter DeviceListFilter) ([]DeviceResponse, int64, error) {
	domainFilter := buildFilter(filter)

	devices, err := s.deviceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.deviceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDeviceResponses(devices), total, nil
}

// Update updates a device
func (s *DeviceService) Update(ctx context.Context, deviceID uuid.UUID, req UpdateDeviceRequest) (*DeviceResponse, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		device.Type = catalog.DeviceType(*req.Type)
		device.Touch()
	}
	if req.Price != nil || req.ManufacturingCost != nil {
		price := device.Price
		if req.Price != nil {
			price = *req.Price
		}
		cost := device.ManufacturingCost
		if req.ManufacturingCost != nil {
			cost = req.ManufacturingCost
		}
		if err := device.SetPricing(price, cost); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		switch catalog.DeviceStatus(*req.Status) {
		case catalog.DeviceStatusConnected:
			if err := device.MarkConnected(); err != nil {
				return nil, err
			}
		case catalog.DeviceStatusDisconnected:
			device.MarkDisconnected()
		case catalog.DeviceStatusAvailable:
			device.Release()
		case catalog.DeviceStatusMaintenance:
			device.Status = catalog.DeviceStatusMaintenance
			device.Touch()
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown device status")
		}
	}
	if req.FirmwareVersion != nil {
		device.FirmwareVersion = *req.FirmwareVersion
		device.Touch()
	}
	if req.Notes != nil {
		device.Notes = *req.Notes
		device.Touch()
	}

	if err := s.deviceRepo.Save(ctx, device); err != nil {
		return nil, err
	}

	response := ToDeviceResponse(device)
	return &response, nil
}

// Delete removes a device
func (s *DeviceService) Delete(ctx context.Context, deviceID uuid.UUID) error {
	if _, err := s.deviceRepo.FindByID(ctx, deviceID); err != nil {
		return err
	}
	return s.deviceRepo.Delete(ctx, deviceID)
}

func buildFilter(filter DeviceListFilter) shared.Filter {
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
	domainFilter.Search = filter.Search
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}
