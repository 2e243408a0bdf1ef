package repositories

import (
	"fmt"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// GetByUserID retrieves the profile for an identity. A missing profile is
// not an error; it means the identity has not picked a role yet.
func (r *GORMProfileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// CreateWithLogin inserts the profile and its first login-log row atomically.
func (r *GORMProfileRepository) CreateWithLogin(profile *models.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		stat := models.LoginStat{
			ID:        uuid.New().String(),
			UserID:    profile.UserID,
			LoginTime: profile.LastLogin,
			Role:      profile.Role.String(),
		}
		return tx.Create(&stat).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

// TouchLogin updates the profile's last-login time and appends a login-log
// row atomically.
func (r *GORMProfileRepository) TouchLogin(profile *models.UserProfile, when time.Time) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserProfile{}).Where("id = ?", profile.ID).Update("last_login", when)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("profile with ID %s not found for login update", profile.ID)
		}
		stat := models.LoginStat{
			ID:        uuid.New().String(),
			UserID:    profile.UserID,
			LoginTime: when,
			Role:      profile.Role.String(),
		}
		return tx.Create(&stat).Error
	})
	if err != nil {
		return fmt.Errorf("failed to record login for user %s: %w", profile.UserID, err)
	}
	return nil
}

// RecentLogins returns up to limit login-log rows, newest first.
func (r *GORMProfileRepository) RecentLogins(limit int) ([]models.LoginStat, error) {
	var stats []models.LoginStat
	err := r.db.Order("login_time DESC").Limit(limit).Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent logins: %w", err)
	}
	return stats, nil
}
