package repository

import (
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/models"
	"gorm.io/gorm"
)

// Links gives access to the contact-skill association rows.
type Links interface {
	Find(contactID, skillID uuid.UUID) (*models.ContactSkill, error)
	// LinkedOwnerIDs returns the distinct owners of every contact
	// currently linked to the skill.
	LinkedOwnerIDs(skillID uuid.UUID) ([]uuid.UUID, error)
	Create(link *models.ContactSkill) error
	Delete(link *models.ContactSkill) error
}

type gormLinks struct {
	db *gorm.DB
}

func NewLinks(db *gorm.DB) Links {
	return &gormLinks{db: db}
}

func (r *gormLinks) Find(contactID, skillID uuid.UUID) (*models.ContactSkill, error) {
	var link models.ContactSkill
	err := r.db.Where("contact_id = ? AND skill_id = ?", contactID, skillID).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *gormLinks) LinkedOwnerIDs(skillID uuid.UUID) ([]uuid.UUID, error) {
	var owners []uuid.UUID
	err := r.db.Model(&models.Contact{}).
		Distinct("contacts.user_id").
		Joins("JOIN contact_skills ON contact_skills.contact_id = contacts.id").
		Where("contact_skills.skill_id = ?", skillID).
		Pluck("contacts.user_id", &owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *gormLinks) Create(link *models.ContactSkill) error {
	return r.db.Create(link).Error
}

func (r *gormLinks) Delete(link *models.ContactSkill) error {
	return r.db.Where("contact_id = ? AND skill_id = ?", link.ContactID, link.SkillID).
		Delete(&models.ContactSkill{}).Error
}
