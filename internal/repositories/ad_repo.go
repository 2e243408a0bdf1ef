package repositories

import (
	"katalog/internal/models"
)

// AdRepository defines the interface for advertisement data access.
type AdRepository interface {
	GetAll() ([]models.Advertisement, error)
	GetByID(id string) (*models.Advertisement, error)
	ListActive() ([]models.Advertisement, error)
	Create(ad *models.Advertisement) error
	Update(ad *models.Advertisement) error
	Delete(id string) error
}
