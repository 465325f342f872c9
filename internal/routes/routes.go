package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tbardet/contacts-api/internal/config"
	"github.com/tbardet/contacts-api/internal/handlers"
	"github.com/tbardet/contacts-api/internal/middleware"
	"github.com/tbardet/contacts-api/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	contactHandler *handlers.ContactHandler,
	skillHandler *handlers.SkillHandler,
	linkHandler *handlers.LinkHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	jwt := middleware.JWTProtected(cfg)
	read := middleware.RoleRequired(models.RoleAdmin, models.RoleStandard)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	contacts := api.Group("/contacts", jwt)
	contacts.Get("/", read, contactHandler.ListContacts)
	contacts.Get("/:id", read, contactHandler.GetContact)
	contacts.Post("/", adminOnly, contactHandler.CreateContact)
	contacts.Put("/:id", adminOnly, contactHandler.UpdateContact)
	contacts.Delete("/:id", adminOnly, contactHandler.DeleteContact)

	// Association endpoints: role gate only, no ownership check.
	contacts.Post("/:contactId/skills/:skillId", adminOnly, linkHandler.AddSkillToContact)
	contacts.Delete("/:contactId/skills/:skillId", adminOnly, linkHandler.RemoveSkillFromContact)

	skills := api.Group("/skills", jwt)
	skills.Get("/", read, skillHandler.ListSkills)
	skills.Get("/:id", read, skillHandler.GetSkill)
	skills.Post("/", adminOnly, skillHandler.CreateSkill)
	skills.Put("/:id", adminOnly, skillHandler.UpdateSkill)
	skills.Delete("/:id", adminOnly, skillHandler.DeleteSkill)
}
