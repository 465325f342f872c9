package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tbardet/contacts-api/internal/config"
	"github.com/tbardet/contacts-api/internal/handlers"
	"github.com/tbardet/contacts-api/internal/models"
	"github.com/tbardet/contacts-api/internal/repository"
	"github.com/tbardet/contacts-api/internal/services"
	"gorm.io/gorm"
)

// -------- stubs --------

type stubUsers struct {
	repository.Users
}

type stubContacts struct {
	repository.Contacts
	contact *models.Contact
}

func (s *stubContacts) FindByID(id uuid.UUID) (*models.Contact, error) {
	if s.contact != nil && s.contact.ID == id {
		return s.contact, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSkills struct {
	repository.Skills
	skill *models.Skill
}

func (s *stubSkills) FindByID(id uuid.UUID) (*models.Skill, error) {
	if s.skill != nil && s.skill.ID == id {
		return s.skill, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubLinks struct {
	repository.Links
	link    *models.ContactSkill
	created []models.ContactSkill
}

func (s *stubLinks) Find(contactID, skillID uuid.UUID) (*models.ContactSkill, error) {
	if s.link != nil && s.link.ContactID == contactID && s.link.SkillID == skillID {
		return s.link, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubLinks) Create(link *models.ContactSkill) error {
	s.created = append(s.created, *link)
	return nil
}

func (s *stubLinks) Delete(link *models.ContactSkill) error {
	return nil
}

// -------- fixture --------

func newRouteApp(cfg *config.Config, contacts *stubContacts, skills *stubSkills, links *stubLinks) *fiber.App {
	users := &stubUsers{}

	authService := services.NewAuthService(users, cfg)
	contactService := services.NewContactService(contacts, users)
	skillService := services.NewSkillService(skills, links, users)
	linkService := services.NewLinkService(contacts, skills, links)

	app := fiber.New()
	Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewContactHandler(contactService),
		handlers.NewSkillHandler(skillService),
		handlers.NewLinkHandler(linkService),
	)
	return app
}

func signToken(t *testing.T, cfg *config.Config, username, role string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

// The association routes sit behind the Admin role gate alone: an admin
// who does not own the contact — and is not even a stored user — can
// link and unlink skills on it. This pins the asymmetry with the
// contact-mutation routes, which do check ownership.
func TestLinkRoute_AdminWithoutOwnershipCanLink(t *testing.T) {
	cfg := &config.Config{JWTSecret: "route-test-secret"}

	contact := &models.Contact{ID: uuid.New(), UserID: uuid.New()}
	skill := &models.Skill{ID: uuid.New(), Name: "Go", Level: "Intermediate"}
	links := &stubLinks{}
	app := newRouteApp(cfg, &stubContacts{contact: contact}, &stubSkills{skill: skill}, links)

	token := signToken(t, cfg, "someone-else", models.RoleAdmin)
	req := httptest.NewRequest("POST", "/api/contacts/"+contact.ID.String()+"/skills/"+skill.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, links.created, 1)
	require.Equal(t, contact.ID, links.created[0].ContactID)
	require.Equal(t, skill.ID, links.created[0].SkillID)
}

func TestLinkRoute_AdminWithoutOwnershipCanUnlink(t *testing.T) {
	cfg := &config.Config{JWTSecret: "route-test-secret"}

	contact := &models.Contact{ID: uuid.New(), UserID: uuid.New()}
	skill := &models.Skill{ID: uuid.New(), Name: "Go", Level: "Intermediate"}
	links := &stubLinks{link: &models.ContactSkill{ContactID: contact.ID, SkillID: skill.ID}}
	app := newRouteApp(cfg, &stubContacts{contact: contact}, &stubSkills{skill: skill}, links)

	token := signToken(t, cfg, "someone-else", models.RoleAdmin)
	req := httptest.NewRequest("DELETE", "/api/contacts/"+contact.ID.String()+"/skills/"+skill.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLinkRoute_StandardRoleRejected(t *testing.T) {
	cfg := &config.Config{JWTSecret: "route-test-secret"}

	contact := &models.Contact{ID: uuid.New(), UserID: uuid.New()}
	skill := &models.Skill{ID: uuid.New(), Name: "Go", Level: "Intermediate"}
	links := &stubLinks{}
	app := newRouteApp(cfg, &stubContacts{contact: contact}, &stubSkills{skill: skill}, links)

	token := signToken(t, cfg, "someone-else", models.RoleStandard)
	req := httptest.NewRequest("POST", "/api/contacts/"+contact.ID.String()+"/skills/"+skill.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, links.created)
}
