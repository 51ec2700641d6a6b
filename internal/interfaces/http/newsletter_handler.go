package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
)

// NewsletterHandler maneja la suscripción pública al boletín y el listado
// admin de suscriptores.
type NewsletterHandler struct {
	uc *usecase.NewsletterUseCase
}

// NewNewsletterHandler construye el handler del boletín.
func NewNewsletterHandler(uc *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

// Subscribe godoc
// @Summary      Suscribirse al boletín
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewsletterSubscribeRequest  true  "email"
// @Success      201   {object}  dto.NewsletterSubscriberResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.NewsletterSubscribeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "email es requerido"})
	}
	sub, err := h.uc.Subscribe(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// List lista los suscriptores del boletín (solo admin).
func (h *NewsletterHandler) List(c *fiber.Ctx) error {
	subs, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}
