package models

import "github.com/google/uuid"

// ContactSkill links one contact to one skill. The composite primary key
// is the only uniqueness guard on the association; a duplicate link is
// rejected by the database, not by application code.
type ContactSkill struct {
	ContactID uuid.UUID `gorm:"type:uuid;primaryKey" json:"contact_id"`
	SkillID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"skill_id"`
	Contact   *Contact  `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"-"`
	Skill     *Skill    `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"-"`
}
