package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile carries the role and last-login time of an identity.
// At most one profile exists per user; creation is idempotent.
type UserProfile struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string    `json:"userId" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Role       Role      `json:"role" gorm:"type:varchar(16)" validate:"required,oneof=client admin"`
	LastLogin  time.Time `json:"lastLogin"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// LoginStat is one row of the append-only login log. A row is written when a
// profile is first provisioned and on every subsequent login. Role is a
// snapshot of the profile role at login time.
type LoginStat struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36)"`
	LoginTime time.Time `json:"loginTime" gorm:"index"`
	Role      string    `json:"role" gorm:"type:varchar(16)"`
}
