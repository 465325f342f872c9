package repository

import (
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/models"
	"gorm.io/gorm"
)

// Contacts gives access to stored contacts. Fetches eagerly include the
// skill association rows.
type Contacts interface {
	List() ([]models.Contact, error)
	FindByID(id uuid.UUID) (*models.Contact, error)
	FindByTriple(firstname, lastname, mobilePhone string) (*models.Contact, error)
	Create(contact *models.Contact) error
	Save(contact *models.Contact) error
	Delete(contact *models.Contact) error
}

type gormContacts struct {
	db *gorm.DB
}

func NewContacts(db *gorm.DB) Contacts {
	return &gormContacts{db: db}
}

func (r *gormContacts) List() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Preload("ContactSkills").Order("created_at").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *gormContacts) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.Preload("ContactSkills").First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *gormContacts) FindByTriple(firstname, lastname, mobilePhone string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("ContactSkills").
		Where("firstname = ? AND lastname = ? AND mobile_phone_number = ?", firstname, lastname, mobilePhone).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *gormContacts) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *gormContacts) Save(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *gormContacts) Delete(contact *models.Contact) error {
	return r.db.Delete(contact).Error
}
