package repositories

import (
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAdRepository is a GORM implementation of AdRepository.
type GORMAdRepository struct {
	db *gorm.DB
}

// NewGORMAdRepository creates a new instance of GORMAdRepository.
func NewGORMAdRepository(db *gorm.DB) *GORMAdRepository {
	return &GORMAdRepository{
		db: db,
	}
}

// GetAll retrieves all advertisements, regardless of active flag.
func (r *GORMAdRepository) GetAll() ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := r.db.Find(&ads).Error; err != nil {
		return nil, fmt.Errorf("failed to get all advertisements: %w", err)
	}
	return ads, nil
}

// GetByID retrieves a single advertisement by its ID.
func (r *GORMAdRepository) GetByID(id string) (*models.Advertisement, error) {
	var ad models.Advertisement
	if err := r.db.First(&ad, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("advertisement with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get advertisement by ID %s: %w", id, err)
	}
	return &ad, nil
}

// ListActive retrieves all active advertisements.
func (r *GORMAdRepository) ListActive() ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := r.db.Where("is_active = ?", true).Find(&ads).Error; err != nil {
		return nil, fmt.Errorf("failed to list active advertisements: %w", err)
	}
	return ads, nil
}

// Create creates a new advertisement.
func (r *GORMAdRepository) Create(ad *models.Advertisement) error {
	if ad.ID == "" {
		ad.ID = uuid.New().String()
	}
	if err := r.db.Create(ad).Error; err != nil {
		return fmt.Errorf("failed to create advertisement: %w", err)
	}
	return nil
}

// Update updates an existing advertisement.
func (r *GORMAdRepository) Update(ad *models.Advertisement) error {
	res := r.db.Save(ad)
	if res.Error != nil {
		return fmt.Errorf("failed to update advertisement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("advertisement with ID %s not found for update", ad.ID)
	}
	return nil
}

// Delete deletes an advertisement by its ID.
func (r *GORMAdRepository) Delete(id string) error {
	res := r.db.Delete(&models.Advertisement{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete advertisement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("advertisement with ID %s not found for deletion", id)
	}
	return nil
}
