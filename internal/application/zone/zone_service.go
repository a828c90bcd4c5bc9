package zone

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
	"github.com/visionassist/backend/internal/domain/zone"
)

// ZoneService handles zone and environment business operations
type ZoneService struct {
	zoneRepo zone.ZoneRepository
	envRepo  zone.EnvironmentRepository
}

// NewZoneService creates a new ZoneService
func NewZoneService(zoneRepo zone.ZoneRepository, envRepo zone.EnvironmentRepository) *ZoneService {
	return &ZoneService{
		zoneRepo: zoneRepo,
		envRepo:  envRepo,
	}
}

// Create creates a new zone
func (s *ZoneService) Create(ctx context.Context, req CreateZoneRequest) (*ZoneResponse, error) {
	z, err := zone.NewZone(req.Name, zone.ZoneType(req.Type))
	if err != nil {
		return nil, err
	}
	z.Description = req.Description

	if req.EnvironmentID != nil {
		env, err := s.envRepo.FindByID(ctx, *req.EnvironmentID)
		if err != nil {
			return nil, err
		}
		z.AttachEnvironment(env.ID)
	}

	if err := s.zoneRepo.Save(ctx, z); err != nil {
		return nil, err
	}

	response := ToZoneResponse(z)
	return &response, nil
}

// GetByID retrieves a zone by ID
func (s *ZoneService) GetByID(ctx context.Context, zoneID uuid.UUID) (*ZoneResponse, error) {
	z, err := s.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	response := ToZoneResponse(z)
	return &response, nil
}

// List retrieves zones with filtering and pagination
func (s *ZoneService) List(ctx context.Context, filter ZoneListFilter) ([]ZoneResponse, int64, error) {
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

	zones, err := s.zoneRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.zoneRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToZoneResponses(zones), total, nil
}

// Update updates a zone
func (s *ZoneService) Update(ctx context.Context, zoneID uuid.UUID, req UpdateZoneRequest) (*ZoneResponse, error) {
	z, err := s.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Zone name is required")
		}
		z.Name = name
		z.Touch()
	}
	if req.Type != nil {
		z.Type = zone.ZoneType(*req.Type)
		z.Touch()
	}
	if req.EnvironmentID != nil {
		env, err := s.envRepo.FindByID(ctx, *req.EnvironmentID)
		if err != nil {
			return nil, err
		}
		z.AttachEnvironment(env.ID)
	}
	if req.Description != nil {
		z.Description = *req.Description
		z.Touch()
	}

	if err := s.zoneRepo.Save(ctx, z); err != nil {
		return nil, err
	}

	response := ToZoneResponse(z)
	return &response, nil
}

// Delete removes a zone
func (s *ZoneService) Delete(ctx context.Context, zoneID uuid.UUID) error {
	if _, err := s.zoneRepo.FindByID(ctx, zoneID); err != nil {
		return err
	}
	return s.zoneRepo.Delete(ctx, zoneID)
}

// CreateEnvironment creates a new environment
func (s *ZoneService) CreateEnvironment(ctx context.Context, req CreateEnvironmentRequest) (*EnvironmentResponse, error) {
	env, err := zone.NewEnvironment(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.envRepo.Save(ctx, env); err != nil {
		return nil, err
	}

	response := ToEnvironmentResponse(env)
	return &response, nil
}

// ListEnvironments retrieves all environments
func (s *ZoneService) ListEnvironments(ctx context.Context) ([]EnvironmentResponse, error) {
	envs, err := s.envRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToEnvironmentResponses(envs), nil
}
