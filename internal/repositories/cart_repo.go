package repositories

import (
	"katalog/internal/models"
)

// CartRepository defines the interface for cart line data access.
type CartRepository interface {
	ListByUser(userID string) ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	// Upsert adds quantity to the existing (user, product) line, or inserts
	// a new one, atomically. It returns the ID of the affected line.
	Upsert(userID, productID string, quantity int) (string, error)
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
	DeleteByUser(userID string) error
	// SumQuantities returns the total quantity across the user's lines,
	// zero when the cart is empty.
	SumQuantities(userID string) (int, error)
}
