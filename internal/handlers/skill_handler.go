package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/identity"
	"github.com/tbardet/contacts-api/internal/services"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.skillService.List()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch skills",
		})
	}
	return c.JSON(skills)
}

func (h *SkillHandler) GetSkill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid skill ID",
		})
	}

	skill, err := h.skillService.Get(id)
	if err != nil {
		return skillError(c, err)
	}
	return c.JSON(skill)
}

func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	skill, err := h.skillService.Create(&req)
	if err != nil {
		return skillError(c, err)
	}
	return c.JSON(skill)
}

func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	username, err := identity.CurrentUsername(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid skill ID",
		})
	}

	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	skill, err := h.skillService.Update(username, id, &req)
	if err != nil {
		return skillError(c, err)
	}
	return c.JSON(skill)
}

func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	username, err := identity.CurrentUsername(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid skill ID",
		})
	}

	skill, err := h.skillService.Delete(username, id)
	if err != nil {
		return skillError(c, err)
	}
	return c.JSON(skill)
}

func skillError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSkillNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrSkillInUse), errors.Is(err, services.ErrIdentityNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}
