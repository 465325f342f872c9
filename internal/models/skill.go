package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill has no single owner; it is shared by every contact linked to it.
// Level is free text ("Beginner", "Expert", ...), not a closed enum.
type Skill struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Level         string         `gorm:"size:100;not null" json:"level"`
	ContactSkills []ContactSkill `gorm:"foreignKey:SkillID" json:"contact_skills,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
