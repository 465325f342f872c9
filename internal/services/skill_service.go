package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/models"
	"github.com/tbardet/contacts-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound = errors.New("skill has not been found")
	ErrSkillInUse    = errors.New("skill is used by another user's contacts")
)

type SkillService struct {
	skills repository.Skills
	links  repository.Links
	users  repository.Users
}

func NewSkillService(skills repository.Skills, links repository.Links, users repository.Users) *SkillService {
	return &SkillService{skills: skills, links: links, users: users}
}

func (s *SkillService) List() ([]models.Skill, error) {
	return s.skills.List()
}

func (s *SkillService) Get(id uuid.UUID) (*models.Skill, error) {
	skill, err := s.skills.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

// Create returns the existing skill when an identical (name, level) pair
// is already stored.
func (s *SkillService) Create(req *dto.SkillRequest) (*models.Skill, error) {
	existing, err := s.skills.FindByNameLevel(req.Name, req.Level)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill := models.Skill{
		ID:    uuid.New(),
		Name:  req.Name,
		Level: req.Level,
	}
	if err := s.skills.Create(&skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &skill, nil
}

// Update replaces name and level. A skill may only be touched when every
// contact linked to it belongs to the caller; the owner check is
// transitive through the association rows.
func (s *SkillService) Update(callerUsername string, id uuid.UUID, req *dto.SkillRequest) (*models.Skill, error) {
	skill, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkExclusiveUse(callerUsername, id); err != nil {
		return nil, err
	}

	skill.Name = req.Name
	skill.Level = req.Level
	if err := s.skills.Save(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// Delete removes the skill under the same transitive ownership gate as
// Update. Returns the removed record.
func (s *SkillService) Delete(callerUsername string, id uuid.UUID) (*models.Skill, error) {
	skill, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkExclusiveUse(callerUsername, id); err != nil {
		return nil, err
	}

	if err := s.skills.Delete(skill); err != nil {
		return nil, fmt.Errorf("failed to delete skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) checkExclusiveUse(callerUsername string, skillID uuid.UUID) error {
	caller, err := s.users.FindByUsername(callerUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIdentityNotFound
		}
		return err
	}

	owners, err := s.links.LinkedOwnerIDs(skillID)
	if err != nil {
		return err
	}
	for _, owner := range owners {
		if owner != caller.ID {
			return ErrSkillInUse
		}
	}
	return nil
}
