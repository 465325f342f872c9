package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a user. Role is fixed at registration.
const (
	RoleAdmin    = "Admin"
	RoleStandard = "Standard"
)

// ValidRole reports whether s names one of the two defined roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleStandard
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Contacts  []Contact `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
