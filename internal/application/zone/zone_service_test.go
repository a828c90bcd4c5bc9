package zone

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/visionassist/backend/internal/domain/shared"
	"github.com/visionassist/backend/internal/domain/zone"
)

// ===== Mocks =====

type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]zone.Zone, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) Save(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockZoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockEnvironmentRepository struct {
	mock.Mock
}

func (m *MockEnvironmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*zone.Environment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) FindAll(ctx context.Context) ([]zone.Environment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]zone.Environment), args.Error(1)
}

func (m *MockEnvironmentRepository) Save(ctx context.Context, env *zone.Environment) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}

func (m *MockEnvironmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ===== Tests =====

func TestZoneService_Create_AttachesEnvironment(t *testing.T) {
	zoneRepo := new(MockZoneRepository)
	envRepo := new(MockEnvironmentRepository)
	service := NewZoneService(zoneRepo, envRepo)

	env, err := zone.NewEnvironment("urban")
	assert.NoError(t, err)
	envRepo.On("FindByID", mock.Anything, env.ID).Return(env, nil)
	zoneRepo.On("Save", mock.Anything, mock.AnythingOfType("*zone.Zone")).Return(nil)

	response, err := service.Create(context.Background(), CreateZoneRequest{
		Name:          "Main Square",
		Type:          "safe",
		EnvironmentID: &env.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Main Square", response.Name)
	assert.Equal(t, "safe", response.Type)
	assert.NotNil(t, response.EnvironmentID)
	assert.Equal(t, env.ID, *response.EnvironmentID)
	zoneRepo.AssertExpectations(t)
}

func TestZoneService_Create_UnknownEnvironmentFails(t *testing.T) {
	zoneRepo := new(MockZoneRepository)
	envRepo := new(MockEnvironmentRepository)
	service := NewZoneService(zoneRepo, envRepo)

	envID := uuid.New()
	envRepo.On("FindByID", mock.Anything, envID).Return(nil, shared.ErrNotFound)

	response, err := service.Create(context.Background(), CreateZoneRequest{
		Name:          "Main Square",
		Type:          "safe",
		EnvironmentID: &envID,
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	zoneRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestZoneService_Create_EmptyNameFails(t *testing.T) {
	zoneRepo := new(MockZoneRepository)
	service := NewZoneService(zoneRepo, new(MockEnvironmentRepository))

	response, err := service.Create(context.Background(), CreateZoneRequest{
		Name: "   ",
		Type: "danger",
	})

	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	zoneRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestZoneService_Update_EmptyNameFails(t *testing.T) {
	zoneRepo := new(MockZoneRepository)
	service := NewZoneService(zoneRepo, new(MockEnvironmentRepository))

	z, err := zone.NewZone("Main Square", zone.ZoneTypeSafe)
	assert.NoError(t, err)
	zoneRepo.On("FindByID", mock.Anything, z.ID).Return(z, nil)

	name := "  "
	response, err := service.Update(context.Background(), z.ID, UpdateZoneRequest{Name: &name})

	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	zoneRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestZoneService_Delete_NotFound(t *testing.T) {
	zoneRepo := new(MockZoneRepository)
	service := NewZoneService(zoneRepo, new(MockEnvironmentRepository))

	zoneID := uuid.New()
	zoneRepo.On("FindByID", mock.Anything, zoneID).Return(nil, shared.ErrNotFound)

	err := service.Delete(context.Background(), zoneID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	zoneRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestZoneService_List_AppliesTypeFilter(t *testing.T) {
	zoneRepo := new(MockZoneRepository)
	service := NewZoneService(zoneRepo, new(MockEnvironmentRepository))

	zoneRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["type"] == "danger"
	})).Return([]zone.Zone{}, nil)
	zoneRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	_, total, err := service.List(context.Background(), ZoneListFilter{Type: "danger"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	zoneRepo.AssertExpectations(t)
}

func TestZoneService_CreateEnvironment(t *testing.T) {
	envRepo := new(MockEnvironmentRepository)
	service := NewZoneService(new(MockZoneRepository), envRepo)

	envRepo.On("Save", mock.Anything, mock.AnythingOfType("*zone.Environment")).Return(nil)

	response, err := service.CreateEnvironment(context.Background(), CreateEnvironmentRequest{Name: " indoor "})

	assert.NoError(t, err)
	assert.Equal(t, "indoor", response.Name)
	envRepo.AssertExpectations(t)
}

func TestZoneService_ListEnvironments(t *testing.T) {
	envRepo := new(MockEnvironmentRepository)
	service := NewZoneService(new(MockZoneRepository), envRepo)

	urban, err := zone.NewEnvironment("urban")
	assert.NoError(t, err)
	indoor, err := zone.NewEnvironment("indoor")
	assert.NoError(t, err)
	envRepo.On("FindAll", mock.Anything).Return([]zone.Environment{*urban, *indoor}, nil)

	responses, err := service.ListEnvironments(context.Background())

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "urban", responses[0].Name)
}
