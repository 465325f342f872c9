package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/config"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/models"
	"github.com/tbardet/contacts-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid user credentials")
	ErrUsernameTaken      = errors.New("username already used")
	ErrInvalidRole        = errors.New("role is invalid, select Admin or Standard")

	// ErrIdentityNotFound means a token claim did not resolve to a stored
	// user. Shared by every service that re-resolves the caller.
	ErrIdentityNotFound = errors.New("logged user cannot be found")
)

type AuthService struct {
	users repository.Users
	cfg   *config.Config
}

func NewAuthService(users repository.Users, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register creates a user account. Submitting an identical
// (username, password) pair again returns the existing account.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.users.FindByCredentials(req.Username, req.Password)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login checks the credentials by exact match and issues a signed bearer
// token carrying the username and role claims.
func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	user, err := s.users.FindByCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iss":  s.cfg.JWTIssuer,
		"aud":  s.cfg.JWTAudience,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
