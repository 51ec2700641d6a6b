package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// LeadHandler maneja la captura pública de leads, el webhook de intake y las
// operaciones del dashboard sobre el funnel.
type LeadHandler struct {
	uc           *usecase.LeadUseCase
	webhookToken string
}

// NewLeadHandler construye el handler de leads. webhookToken protege el
// endpoint de intake; vacío lo deshabilita.
func NewLeadHandler(uc *usecase.LeadUseCase, webhookToken string) *LeadHandler {
	return &LeadHandler{uc: uc, webhookToken: webhookToken}
}

// Capture godoc
// @Summary      Capturar un lead desde el formulario público
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LeadCaptureRequest  true  "datos del lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Capture(c *fiber.Ctx) error {
	var in dto.LeadCaptureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	lead, err := h.uc.Capture(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

// WebhookCapture recibe leads de integraciones externas (automatizaciones).
// Misma semántica que Capture pero autenticado por token compartido en el
// header X-Webhook-Token y con origen webhook por defecto.
func (h *LeadHandler) WebhookCapture(c *fiber.Ctx) error {
	if !h.validWebhookToken(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token de webhook inválido"})
	}
	var in dto.LeadCaptureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if in.Origen == "" {
		in.Origen = entity.LeadOrigenWebhook
	}
	lead, err := h.uc.Capture(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *LeadHandler) validWebhookToken(c *fiber.Ctx) bool {
	if h.webhookToken == "" {
		return false
	}
	got := c.Get("X-Webhook-Token")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookToken)) == 1
}

// List godoc
// @Summary      Listar leads del palenque en sesión
// @Tags         leads
// @Produce      json
// @Param        estado       query  string  false  "filtro por estado del funnel"
// @Param        origen       query  string  false  "filtro por origen de captura"
// @Param        palenque_id  query  int     false  "tenant (solo admin/superadmin)"
// @Success      200  {array}  dto.LeadResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	var in dto.LeadListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "query params inválidos"})
	}
	in.DefaultPage()
	leads, err := h.uc.List(c.Context(), scope, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(leads)
}

// GetByID devuelve el detalle de un lead del tenant en sesión.
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	lead, err := h.uc.Get(c.Context(), scope, int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

// UpdateEstado godoc
// @Summary      Cambiar el estado de un lead en el funnel
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadEstadoRequest  true  "nuevo estado"
// @Success      200  {object}  dto.LeadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/leads/{id}/estado [patch]
func (h *LeadHandler) UpdateEstado(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in dto.UpdateLeadEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(c.Context(), scope, int64(id), in.Estado); err != nil {
		return respondError(c, err)
	}
	lead, err := h.uc.Get(c.Context(), scope, int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

// UpdateNotas actualiza las notas de seguimiento de un lead.
func (h *LeadHandler) UpdateNotas(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in dto.UpdateLeadNotasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := h.uc.UpdateNotas(c.Context(), scope, int64(id), in.Notas); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
