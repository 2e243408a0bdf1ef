package repositories

import (
	"sort"
	"sync"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
type MockProfileRepository struct {
	profiles map[string]models.UserProfile // keyed by userID
	stats    []models.LoginStat
	mu       sync.RWMutex
}

// NewMockProfileRepository creates a new instance of MockProfileRepository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]models.UserProfile),
	}
}

// GetByUserID returns the profile for an identity, or (nil, nil) when the
// identity has not been provisioned.
func (r *MockProfileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// CreateWithLogin inserts the profile and its first login-log row.
func (r *MockProfileRepository) CreateWithLogin(profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	r.profiles[profile.UserID] = *profile
	r.stats = append(r.stats, models.LoginStat{
		ID:        uuid.New().String(),
		UserID:    profile.UserID,
		LoginTime: profile.LastLogin,
		Role:      profile.Role.String(),
	})
	return nil
}

// TouchLogin updates the profile's last-login time and appends a login-log
// row.
func (r *MockProfileRepository) TouchLogin(profile *models.UserProfile, when time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.profiles[profile.UserID]
	stored.LastLogin = when
	r.profiles[profile.UserID] = stored
	r.stats = append(r.stats, models.LoginStat{
		ID:        uuid.New().String(),
		UserID:    profile.UserID,
		LoginTime: when,
		Role:      profile.Role.String(),
	})
	return nil
}

// RecentLogins returns up to limit login-log rows, newest first.
func (r *MockProfileRepository) RecentLogins(limit int) ([]models.LoginStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]models.LoginStat, len(r.stats))
	copy(stats, r.stats)
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].LoginTime.After(stats[j].LoginTime)
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}
