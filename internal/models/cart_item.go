package models

import "time"

// CartItem is one line of a user's cart. At most one row exists per
// (user, product) pair; adding the same product again accumulates quantity.
// No DeletedAt column: removal must free the (user, product) pair under the
// unique index so the product can be re-added.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);index;index:idx_cart_user_product,unique"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);index:idx_cart_user_product,unique"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartProduct is the live product snapshot joined onto a cart line at read
// time. Price reflects the current product state, not the price at add time.
type CartProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
}

// CartItemView is a cart line joined with its product snapshot.
type CartItemView struct {
	CartItem
	Product CartProduct `json:"product"`
}
