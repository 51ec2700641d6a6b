package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
)

// ConversationHandler maneja el webhook de mensajería entrante y la bandeja
// de conversaciones del dashboard.
type ConversationHandler struct {
	uc           *usecase.ConversationUseCase
	webhookToken string
}

// NewConversationHandler construye el handler de conversaciones.
func NewConversationHandler(uc *usecase.ConversationUseCase, webhookToken string) *ConversationHandler {
	return &ConversationHandler{uc: uc, webhookToken: webhookToken}
}

// WhatsAppWebhook recibe un mensaje entrante del relay de WhatsApp y lo
// registra en la conversación del teléfono (creándola si no existe). El modo
// de la conversación no se toca: solo una respuesta humana lo vuelve manual.
func (h *ConversationHandler) WhatsAppWebhook(c *fiber.Ctx) error {
	if h.webhookToken == "" || subtle.ConstantTimeCompare([]byte(c.Get("X-Webhook-Token")), []byte(h.webhookToken)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token de webhook inválido"})
	}
	var in dto.InboundMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	conv, err := h.uc.Inbound(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(conv)
}

// List godoc
// @Summary      Listar conversaciones del palenque en sesión
// @Tags         conversaciones
// @Produce      json
// @Param        palenque_id  query  int  false  "tenant (solo admin/superadmin)"
// @Success      200  {array}  dto.ConversationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/conversaciones [get]
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "query params inválidos"})
	}
	page.DefaultPage()
	convs, err := h.uc.List(c.Context(), scope, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convs)
}

// GetByID devuelve una conversación con su hilo completo de mensajes.
func (h *ConversationHandler) GetByID(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	conv, err := h.uc.Get(c.Context(), scope, int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(conv)
}

// Reply godoc
// @Summary      Responder una conversación desde el dashboard
// @Tags         conversaciones
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la conversación"
// @Param        body  body  dto.ReplyRequest  true  "mensaje"
// @Success      201  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/conversaciones/{id}/responder [post]
func (h *ConversationHandler) Reply(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in dto.ReplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if in.Mensaje == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "mensaje es requerido"})
	}
	msg, err := h.uc.Reply(c.Context(), scope, int64(id), in.Mensaje)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
