package services_test

import (
	"testing"
	"time"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of repositories.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) CreateWithLogin(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) TouchLogin(profile *models.UserProfile, when time.Time) error {
	args := m.Called(profile, when)
	return args.Error(0)
}

func (m *MockProfileRepository) RecentLogins(limit int) ([]models.LoginStat, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoginStat), args.Error(1)
}

func TestGuard_ResolveRole(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	guard := services.NewGuard(mockRepo)

	// Anonymous caller: no repository access at all
	visitor, err := guard.ResolveRole("")
	assert.NoError(t, err)
	assert.Equal(t, services.VisitorAnonymous, visitor.Role)
	assert.Nil(t, visitor.Profile)
	mockRepo.AssertNotCalled(t, "GetByUserID")

	// Authenticated but unprovisioned: anonymous for role purposes
	mockRepo.On("GetByUserID", "user-1").Return(nil, nil).Once()
	visitor, err = guard.ResolveRole("user-1")
	assert.NoError(t, err)
	assert.Equal(t, services.VisitorAnonymous, visitor.Role)
	mockRepo.AssertExpectations(t)

	// Client profile
	clientProfile := &models.UserProfile{ID: "p1", UserID: "user-1", Role: models.RoleClient}
	mockRepo.On("GetByUserID", "user-1").Return(clientProfile, nil).Once()
	visitor, err = guard.ResolveRole("user-1")
	assert.NoError(t, err)
	assert.Equal(t, services.VisitorClient, visitor.Role)
	assert.Equal(t, clientProfile, visitor.Profile)
	mockRepo.AssertExpectations(t)

	// Admin profile
	adminProfile := &models.UserProfile{ID: "p2", UserID: "user-2", Role: models.RoleAdmin}
	mockRepo.On("GetByUserID", "user-2").Return(adminProfile, nil).Once()
	visitor, err = guard.ResolveRole("user-2")
	assert.NoError(t, err)
	assert.Equal(t, services.VisitorAdmin, visitor.Role)
	mockRepo.AssertExpectations(t)
}

func TestGuard_RequireAuth(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	guard := services.NewGuard(mockRepo)

	assert.ErrorIs(t, guard.RequireAuth(""), services.ErrNotAuthenticated)
	// Any authenticated identity passes; role is not checked here.
	assert.NoError(t, guard.RequireAuth("user-1"))
	mockRepo.AssertNotCalled(t, "GetByUserID")
}

func TestGuard_RequireAdmin(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	guard := services.NewGuard(mockRepo)

	// No identity
	_, err := guard.RequireAdmin("")
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)

	// Unprovisioned identity
	mockRepo.On("GetByUserID", "user-1").Return(nil, nil).Once()
	_, err = guard.RequireAdmin("user-1")
	assert.ErrorIs(t, err, services.ErrAdminRequired)
	mockRepo.AssertExpectations(t)

	// Client role
	mockRepo.On("GetByUserID", "user-1").Return(&models.UserProfile{ID: "p1", UserID: "user-1", Role: models.RoleClient}, nil).Once()
	_, err = guard.RequireAdmin("user-1")
	assert.ErrorIs(t, err, services.ErrAdminRequired)
	mockRepo.AssertExpectations(t)

	// Admin role
	adminProfile := &models.UserProfile{ID: "p2", UserID: "user-2", Role: models.RoleAdmin}
	mockRepo.On("GetByUserID", "user-2").Return(adminProfile, nil).Once()
	profile, err := guard.RequireAdmin("user-2")
	assert.NoError(t, err)
	assert.Equal(t, adminProfile, profile)
	mockRepo.AssertExpectations(t)
}
