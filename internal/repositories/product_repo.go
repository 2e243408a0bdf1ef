package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	ListActive() ([]models.Product, error)
	ListActiveByCategory(category string) ([]models.Product, error)
	// SearchActive matches active products whose name contains the given
	// text, case-insensitively. Result order is store-defined.
	SearchActive(name string) ([]models.Product, error)
	// ActiveCategories returns the distinct categories of active products
	// in ascending order.
	ActiveCategories() ([]string, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete removes the product and every cart item referencing it in a
	// single transaction.
	Delete(id string) error
}
