package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a directory entry owned by exactly one user. The owner is
// bound at creation and never reassigned.
type Contact struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Firstname         string         `gorm:"size:255;not null" json:"firstname"`
	Lastname          string         `gorm:"size:255;not null" json:"lastname"`
	Fullname          string         `gorm:"size:255;not null" json:"fullname"`
	Address           string         `gorm:"size:500;not null" json:"address"`
	Email             string         `gorm:"size:255;not null" json:"email"`
	MobilePhoneNumber string         `gorm:"size:20;not null" json:"mobile_phone_number"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User              *User          `gorm:"foreignKey:UserID" json:"-"`
	ContactSkills     []ContactSkill `gorm:"foreignKey:ContactID" json:"contact_skills"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
