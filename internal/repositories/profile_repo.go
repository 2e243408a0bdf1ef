package repositories

import (
	"time"

	"katalog/internal/models"
)

// ProfileRepository defines the interface for user profile and login log
// data access.
type ProfileRepository interface {
	// GetByUserID returns the profile for the identity, or (nil, nil) when
	// the identity is authenticated but not yet provisioned.
	GetByUserID(userID string) (*models.UserProfile, error)
	// CreateWithLogin inserts the profile and its first login-log row in a
	// single transaction.
	CreateWithLogin(profile *models.UserProfile) error
	// TouchLogin updates the profile's last-login time and appends a
	// login-log row in a single transaction.
	TouchLogin(profile *models.UserProfile, when time.Time) error
	// RecentLogins returns up to limit login-log rows, newest first.
	RecentLogins(limit int) ([]models.LoginStat, error)
}
