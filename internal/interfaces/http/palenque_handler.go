package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
)

// PalenqueHandler maneja la administración de tenants (solo admin/superadmin).
type PalenqueHandler struct {
	uc *usecase.PalenqueUseCase
}

// NewPalenqueHandler construye el handler de palenques.
func NewPalenqueHandler(uc *usecase.PalenqueUseCase) *PalenqueHandler {
	return &PalenqueHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un palenque
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePalenqueRequest  true  "datos del palenque"
// @Success      201   {object}  dto.PalenqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/palenques [post]
func (h *PalenqueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePalenqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "nombre es requerido"})
	}
	palenque, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(palenque)
}

// List lista todos los palenques.
func (h *PalenqueHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "query params inválidos"})
	}
	page.DefaultPage()
	palenques, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(palenques)
}

// GetByID devuelve un palenque.
func (h *PalenqueHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	palenque, err := h.uc.Get(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(palenque)
}

// Update actualiza los datos de contacto y el plan del palenque.
func (h *PalenqueHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in dto.UpdatePalenqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "nombre es requerido"})
	}
	palenque, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(palenque)
}

// SetActivo suspende o reactiva un palenque. Un palenque inactivo deja de
// aceptar capturas públicas pero conserva todos sus datos.
func (h *PalenqueHandler) SetActivo(c *fiber.Ctx) error {
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
