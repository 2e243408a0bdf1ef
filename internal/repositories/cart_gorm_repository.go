package repositories

import (
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// ListByUser retrieves all cart items owned by the user.
func (r *GORMCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByID retrieves a single cart item by its ID.
func (r *GORMCartRepository) GetByID(id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item by ID %s: %w", id, err)
	}
	return &item, nil
}

// Upsert adds quantity to the existing (user, product) line or inserts a new
// one. The lookup and write run in one transaction so two concurrent adds
// cannot produce duplicate lines.
func (r *GORMCartRepository) Upsert(userID, productID string, quantity int) (string, error) {
	var id string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		if err == nil {
			id = item.ID
			return tx.Model(&item).Update("quantity", item.Quantity+quantity).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		item = models.CartItem{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		id = item.ID
		return tx.Create(&item).Error
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return id, nil
}

// UpdateQuantity replaces the quantity of a cart item.
func (r *GORMCartRepository) UpdateQuantity(id string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s not found for update", id)
	}
	return nil
}

// Delete removes a cart item by its ID.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s not found for deletion", id)
	}
	return nil
}

// DeleteByUser removes every cart item owned by the user. Deleting an
// already empty cart is not an error.
func (r *GORMCartRepository) DeleteByUser(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}

// SumQuantities returns the total quantity across the user's cart lines.
func (r *GORMCartRepository) SumQuantities(userID string) (int, error) {
	var total *int
	err := r.db.Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("SUM(quantity)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum cart quantities for user %s: %w", userID, err)
	}
	if total == nil {
		// SUM over zero rows yields NULL.
		return 0, nil
	}
	return *total, nil
}
