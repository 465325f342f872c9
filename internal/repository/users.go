// Package repository wraps the database behind per-entity interfaces so
// the services can be exercised against fakes.
package repository

import (
	"github.com/tbardet/contacts-api/internal/models"
	"gorm.io/gorm"
)

// Users gives access to stored user accounts. Lookups return
// gorm.ErrRecordNotFound when no row matches.
type Users interface {
	FindByUsername(username string) (*models.User, error)
	FindByCredentials(username, password string) (*models.User, error)
	Create(user *models.User) error
}

type gormUsers struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

func (r *gormUsers) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUsers) FindByCredentials(username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND password = ?", username, password).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUsers) Create(user *models.User) error {
	return r.db.Create(user).Error
}
