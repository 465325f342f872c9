package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/models"
	"github.com/tbardet/contacts-api/internal/repository"
	"github.com/tbardet/contacts-api/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact has not been found")
	ErrInvalidEmail    = errors.New("email format not correct")
	ErrInvalidPhone    = errors.New("mobile phone format not correct, international format starting with + required")
	ErrNotContactOwner = errors.New("you cannot modify another user's contact")
)

type ContactService struct {
	contacts repository.Contacts
	users    repository.Users
}

func NewContactService(contacts repository.Contacts, users repository.Users) *ContactService {
	return &ContactService{contacts: contacts, users: users}
}

func (s *ContactService) List() ([]models.Contact, error) {
	return s.contacts.List()
}

func (s *ContactService) Get(id uuid.UUID) (*models.Contact, error) {
	contact, err := s.contacts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

// Create validates the payload, then returns the existing contact when
// the (firstname, lastname, mobile phone) triple is already stored.
// Validation runs first: a malformed re-submission of an existing triple
// gets a validation error, not the stored record.
func (s *ContactService) Create(callerUsername string, req *dto.ContactRequest) (*models.Contact, error) {
	if err := validateContact(req); err != nil {
		return nil, err
	}

	existing, err := s.contacts.FindByTriple(req.Firstname, req.Lastname, req.MobilePhoneNumber)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	caller, err := s.resolveCaller(callerUsername)
	if err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:                uuid.New(),
		Firstname:         req.Firstname,
		Lastname:          req.Lastname,
		Fullname:          req.Fullname,
		Address:           req.Address,
		Email:             req.Email,
		MobilePhoneNumber: req.MobilePhoneNumber,
		UserID:            caller.ID,
	}
	if err := s.contacts.Create(&contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

// Update replaces every field except the identifier and the owner. The
// ownership gate runs before payload validation.
func (s *ContactService) Update(callerUsername string, id uuid.UUID, req *dto.ContactRequest) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	caller, err := s.resolveCaller(callerUsername)
	if err != nil {
		return nil, err
	}
	if contact.UserID != caller.ID {
		return nil, ErrNotContactOwner
	}

	if err := validateContact(req); err != nil {
		return nil, err
	}

	contact.Firstname = req.Firstname
	contact.Lastname = req.Lastname
	contact.Fullname = req.Fullname
	contact.Address = req.Address
	contact.Email = req.Email
	contact.MobilePhoneNumber = req.MobilePhoneNumber

	if err := s.contacts.Save(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// Delete removes the contact; its association rows go with it via the
// foreign key cascade. Returns the removed record.
func (s *ContactService) Delete(callerUsername string, id uuid.UUID) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	caller, err := s.resolveCaller(callerUsername)
	if err != nil {
		return nil, err
	}
	if contact.UserID != caller.ID {
		return nil, ErrNotContactOwner
	}

	if err := s.contacts.Delete(contact); err != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) resolveCaller(username string) (*models.User, error) {
	caller, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return caller, nil
}

func validateContact(req *dto.ContactRequest) error {
	if !validation.EmailValid(req.Email) {
		return ErrInvalidEmail
	}
	if !validation.PhoneValid(req.MobilePhoneNumber) {
		return ErrInvalidPhone
	}
	return nil
}
