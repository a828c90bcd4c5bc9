package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/visionassist/backend/internal/domain/identity"
	"github.com/visionassist/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// ===== Mocks =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// ===== Tests =====

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	var saved *identity.User
	repo.On("ExistsByEmail", mock.Anything, "op@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*identity.User)
	}).Return(nil)

	response, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Operator",
		Email:    "OP@Example.com",
		Password: "correct horse battery",
		Role:     "analyst",
	})

	assert.NoError(t, err)
	assert.Equal(t, "op@example.com", response.Email)
	assert.Equal(t, "analyst", response.Role)
	assert.NotNil(t, saved)
	assert.NotEqual(t, "correct horse battery", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("correct horse battery")))
}

func TestUserService_Create_ShortPasswordFails(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	repo.On("ExistsByEmail", mock.Anything, "op@example.com").Return(false, nil)

	response, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Operator",
		Email:    "op@example.com",
		Password: "short",
	})

	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Create_DefaultsToReadonlyRole(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	repo.On("ExistsByEmail", mock.Anything, "op@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	response, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Operator",
		Email:    "op@example.com",
		Password: "longenoughpassword",
	})

	assert.NoError(t, err)
	assert.Equal(t, "readonly", response.Role)
}

func TestUserService_Create_DuplicateEmailFails(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	repo.On("ExistsByEmail", mock.Anything, "op@example.com").Return(true, nil)

	response, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Operator",
		Email:    "op@example.com",
		Password: "longenoughpassword",
	})

	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestUserService_Update_DisableUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	user, err := identity.NewUser("Operator", "op@example.com", "longenoughpassword", identity.UserRoleAdmin)
	assert.NoError(t, err)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	status := "disabled"
	response, err := service.Update(context.Background(), user.ID, UpdateUserRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "disabled", response.Status)
	repo.AssertExpectations(t)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	userID := uuid.New()
	repo.On("FindByID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

	err := service.Delete(context.Background(), userID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
