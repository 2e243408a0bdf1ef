package repositories

import (
	"fmt"
	"sync"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

// ListByUser returns all cart items owned by the user.
func (r *MockCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var itemList []models.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			itemList = append(itemList, item)
		}
	}
	return itemList, nil
}

// GetByID returns a cart item by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("cart item with ID %s: %w", id, ErrNotFound)
	}
	return &item, nil
}

// Upsert accumulates quantity onto the (user, product) line or inserts a new
// one.
func (r *MockCartRepository) Upsert(userID, productID string, quantity int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += quantity
			r.items[id] = item
			return id, nil
		}
	}
	item := models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	item.CreatedAt = time.Now()
	r.items[item.ID] = item
	return item.ID, nil
}

// UpdateQuantity replaces the quantity of a cart item.
func (r *MockCartRepository) UpdateQuantity(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("cart item with ID %s not found for update", id)
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

// Delete removes a cart item by its ID.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	if !ok {
		return fmt.Errorf("cart item with ID %s not found for deletion", id)
	}
	delete(r.items, id)
	return nil
}

// DeleteByUser removes every cart item owned by the user.
func (r *MockCartRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

// SumQuantities returns the total quantity across the user's cart lines.
func (r *MockCartRepository) SumQuantities(userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, item := range r.items {
		if item.UserID == userID {
			total += item.Quantity
		}
	}
	return total, nil
}

// deleteByProduct drops every line referencing the product. Used by the
// product repository's delete cascade.
func (r *MockCartRepository) deleteByProduct(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.ProductID == productID {
			delete(r.items, id)
		}
	}
}
