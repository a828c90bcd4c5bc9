package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/shared"
)

// ===== Mocks =====

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*catalog.Device, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Device, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindByStatus(ctx context.Context, status catalog.DeviceStatus, filter shared.Filter) ([]catalog.Device, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Device), args.Error(1)
}

func (m *MockDeviceRepository) Save(ctx context.Context, device *catalog.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceRepository) ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error) {
	args := m.Called(ctx, serialNumber)
	return args.Bool(0), args.Error(1)
}

// ===== Tests =====

func TestDeviceService_Create_NormalizesSerialNumber(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	repo.On("ExistsBySerialNumber", mock.Anything, "SN-0042").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Device")).Return(nil)

	response, err := service.Create(context.Background(), CreateDeviceRequest{
		SerialNumber: "  sn-0042 ",
		Type:         "glasses",
		Price:        decimal.NewFromFloat(249.99),
	})

	assert.NoError(t, err)
	assert.Equal(t, "SN-0042", response.SerialNumber)
	assert.Equal(t, "available", response.Status)
	assert.Equal(t, 249.99, response.Price)
	repo.AssertExpectations(t)
}

func TestDeviceService_Create_DuplicateSerialFails(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	repo.On("ExistsBySerialNumber", mock.Anything, "SN-0042").Return(true, nil)

	response, err := service.Create(context.Background(), CreateDeviceRequest{
		SerialNumber: "SN-0042",
		Type:         "cane",
		Price:        decimal.NewFromFloat(89.5),
	})

	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeviceService_Create_WithManufacturingCost(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	repo.On("ExistsBySerialNumber", mock.Anything, "SN-0100").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Device")).Return(nil)

	cost := decimal.NewFromFloat(120)
	response, err := service.Create(context.Background(), CreateDeviceRequest{
		SerialNumber:      "SN-0100",
		Type:              "bracelet",
		Price:             decimal.NewFromFloat(300),
		ManufacturingCost: &cost,
	})

	assert.NoError(t, err)
	assert.NotNil(t, response.ManufacturingCost)
	assert.Equal(t, 120.0, *response.ManufacturingCost)
}

func TestDeviceService_Update_UnknownStatusFails(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	device, err := catalog.NewDevice("SN-0042", catalog.DeviceTypeGlasses, decimal.NewFromFloat(100))
	assert.NoError(t, err)
	repo.On("FindByID", mock.Anything, device.ID).Return(device, nil)

	status := "retired"
	response, err := service.Update(context.Background(), device.ID, UpdateDeviceRequest{Status: &status})

	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeviceService_Update_ConnectsAvailableDevice(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	device, err := catalog.NewDevice("SN-0042", catalog.DeviceTypeGlasses, decimal.NewFromFloat(100))
	assert.NoError(t, err)
	repo.On("FindByID", mock.Anything, device.ID).Return(device, nil)
	repo.On("Save", mock.Anything, device).Return(nil)

	status := "connected"
	response, err := service.Update(context.Background(), device.ID, UpdateDeviceRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "connected", response.Status)
	repo.AssertExpectations(t)
}

func TestDeviceService_Delete_NotFound(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	deviceID := uuid.New()
	repo.On("FindByID", mock.Anything, deviceID).Return(nil, shared.ErrNotFound)

	err := service.Delete(context.Background(), deviceID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeviceService_List_AppliesStatusFilter(t *testing.T) {
	repo := new(MockDeviceRepository)
	service := NewDeviceService(repo)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "available" && f.Page == 3 && f.PageSize == 10
	})).Return([]catalog.Device{}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	_, total, err := service.List(context.Background(), DeviceListFilter{
		Page:     3,
		PageSize: 10,
		Status:   "available",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	repo.AssertExpectations(t)
}
