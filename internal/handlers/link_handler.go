package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/services"
)

type LinkHandler struct {
	linkService *services.LinkService
}

func NewLinkHandler(linkService *services.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

func (h *LinkHandler) AddSkillToContact(c *fiber.Ctx) error {
	contactID, skillID, err := linkParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	link, err := h.linkService.Link(contactID, skillID)
	if err != nil {
		return linkError(c, err)
	}
	return c.JSON(link)
}

func (h *LinkHandler) RemoveSkillFromContact(c *fiber.Ctx) error {
	contactID, skillID, err := linkParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	link, err := h.linkService.Unlink(contactID, skillID)
	if err != nil {
		return linkError(c, err)
	}
	return c.JSON(link)
}

func linkParams(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	contactID, err := uuid.Parse(c.Params("contactId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid contact ID")
	}
	skillID, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid skill ID")
	}
	return contactID, skillID, nil
}

func linkError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrContactNotFound),
		errors.Is(err, services.ErrSkillNotFound),
		errors.Is(err, services.ErrLinkNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		// Covers the composite-key conflict on a duplicate link.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}
