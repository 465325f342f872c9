package repository

import (
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/models"
	"gorm.io/gorm"
)

// Skills gives access to the skill taxonomy.
type Skills interface {
	List() ([]models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	FindByNameLevel(name, level string) (*models.Skill, error)
	Create(skill *models.Skill) error
	Save(skill *models.Skill) error
	Delete(skill *models.Skill) error
}

type gormSkills struct {
	db *gorm.DB
}

func NewSkills(db *gorm.DB) Skills {
	return &gormSkills{db: db}
}

func (r *gormSkills) List() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("created_at").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *gormSkills) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Preload("ContactSkills").First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *gormSkills) FindByNameLevel(name, level string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name = ? AND level = ?", name, level).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *gormSkills) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *gormSkills) Save(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

func (r *gormSkills) Delete(skill *models.Skill) error {
	return r.db.Delete(skill).Error
}
