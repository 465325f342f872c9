package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/models"
	"github.com/tbardet/contacts-api/internal/repository"
	"gorm.io/gorm"
)

var ErrLinkNotFound = errors.New("the contact does not have this skill")

// LinkService manages the contact-skill association. Both endpoints must
// exist before a link is created or removed; the contact is checked
// first.
type LinkService struct {
	contacts repository.Contacts
	skills   repository.Skills
	links    repository.Links
}

func NewLinkService(contacts repository.Contacts, skills repository.Skills, links repository.Links) *LinkService {
	return &LinkService{contacts: contacts, skills: skills, links: links}
}

// Link associates the skill with the contact. There is no duplicate
// check: linking twice hits the composite primary key and fails at the
// store.
func (s *LinkService) Link(contactID, skillID uuid.UUID) (*models.ContactSkill, error) {
	if err := s.checkEndpoints(contactID, skillID); err != nil {
		return nil, err
	}

	link := models.ContactSkill{
		ContactID: contactID,
		SkillID:   skillID,
	}
	if err := s.links.Create(&link); err != nil {
		return nil, fmt.Errorf("failed to link skill to contact: %w", err)
	}
	return &link, nil
}

// Unlink removes the association row. Returns the removed link.
func (s *LinkService) Unlink(contactID, skillID uuid.UUID) (*models.ContactSkill, error) {
	if err := s.checkEndpoints(contactID, skillID); err != nil {
		return nil, err
	}

	link, err := s.links.Find(contactID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	if err := s.links.Delete(link); err != nil {
		return nil, fmt.Errorf("failed to unlink skill from contact: %w", err)
	}
	return link, nil
}

func (s *LinkService) checkEndpoints(contactID, skillID uuid.UUID) error {
	if _, err := s.contacts.FindByID(contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	if _, err := s.skills.FindByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return err
	}
	return nil
}
