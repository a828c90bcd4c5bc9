package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/partner"
	"github.com/visionassist/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
	deviceRepo catalog.DeviceRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, deviceRepo catalog.DeviceRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		deviceRepo: deviceRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.clientRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
	}

	client, err := partner.NewClient(req.FirstName, req.LastName, req.Email)
	if err != nil {
		return nil, err
	}
	client.Phone = req.Phone
	client.DateOfBirth = req.DateOfBirth
	client.Address = req.Address
	client.EmergencyContact = req.EmergencyContact

	if req.DeviceID != nil {
		if err := s.assignDevice(ctx, client, *req.DeviceID); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		client.FirstName = strings.TrimSpace(*req.FirstName)
		client.Touch()
	}
	if req.LastName != nil {
		client.LastName = strings.TrimSpace(*req.LastName)
		client.Touch()
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != client.Email {
			exists, err := s.clientRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
			}
			client.Email = email
			client.Touch()
		}
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
		client.Touch()
	}
	if req.DateOfBirth != nil {
		client.DateOfBirth = req.DateOfBirth
		client.Touch()
	}
	if req.Address != nil {
		client.Address = *req.Address
		client.Touch()
	}
	if req.EmergencyContact != nil {
		client.EmergencyContact = *req.EmergencyContact
		client.Touch()
	}
	if req.Status != nil {
		switch partner.ClientStatus(*req.Status) {
		case partner.ClientStatusActive:
			client.Activate()
		case partner.ClientStatusInactive:
			client.Deactivate()
		case partner.ClientStatusSuspended:
			client.Suspend()
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown client status")
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, clientID)
}

func (s *ClientService) assignDevice(ctx context.Context, client *partner.Client, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if err := device.MarkConnected(); err != nil {
		return err
	}
	if err := client.AssignDevice(device.ID); err != nil {
		return err
	}
	return s.deviceRepo.Save(ctx, device)
}
