package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/identity"
	"github.com/tbardet/contacts-api/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.contactService.List()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch contacts",
		})
	}
	return c.JSON(contacts)
}

func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact ID",
		})
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		return contactError(c, err)
	}
	return c.JSON(contact)
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	username, err := identity.CurrentUsername(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contact, err := h.contactService.Create(username, &req)
	if err != nil {
		return contactError(c, err)
	}
	return c.JSON(contact)
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	username, err := identity.CurrentUsername(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact ID",
		})
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	contact, err := h.contactService.Update(username, id, &req)
	if err != nil {
		return contactError(c, err)
	}
	return c.JSON(contact)
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	username, err := identity.CurrentUsername(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid contact ID",
		})
	}

	contact, err := h.contactService.Delete(username, id)
	if err != nil {
		return contactError(c, err)
	}
	return c.JSON(contact)
}

func contactError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotContactOwner), errors.Is(err, services.ErrIdentityNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}
