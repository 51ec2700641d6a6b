package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios (solo admin/superadmin).
// El alta de usuarios vive en AuthHandler.Register.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List lista usuarios; con ?palenque_id= filtra por tenant.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "query params inválidos"})
	}
	page.DefaultPage()
	palenqueID := int64(c.QueryInt("palenque_id"))
	users, err := h.uc.List(c.Context(), palenqueID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// SetActivo desactiva o reactiva una cuenta de usuario.
func (h *UserHandler) SetActivo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in struct {
		Activo *bool `json:"activo"`
	}
	if err := c.BodyParser(&in); err != nil || in.Activo == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "activo es requerido"})
	}
	if err := h.uc.SetActivo(c.Context(), int64(id), *in.Activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
