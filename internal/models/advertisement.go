package models

import "gorm.io/gorm"

// Advertisement is a promotional banner shown to shoppers. Mutated only by
// admins; the active flag controls public visibility.
type Advertisement struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string  `json:"title" validate:"required,min=1,max=200"`
	ImageID    *string `json:"imageId,omitempty" gorm:"type:varchar(36)"`
	Link       *string `json:"link,omitempty" validate:"omitempty,url"`
	IsActive   bool    `json:"isActive" gorm:"index"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// AdvertisementView is an advertisement annotated with its resolved image URL.
type AdvertisementView struct {
	Advertisement
	ImageURL *string `json:"imageUrl"`
}
