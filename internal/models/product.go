package models

import "gorm.io/gorm"

// Product represents a catalog product. Only active products are visible
// through the public listing endpoints; the active flag hides a product
// without deleting it.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageID     *string `json:"imageId,omitempty" gorm:"type:varchar(36)"`
	Category    string  `json:"category" gorm:"index" validate:"required,max=100"`
	IsActive    bool    `json:"isActive" gorm:"index"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductView is a product annotated with its resolved image URL, the shape
// returned by every catalog read endpoint.
type ProductView struct {
	Product
	ImageURL *string `json:"imageUrl"`
}
