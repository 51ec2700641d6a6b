package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
	"github.com/torressantiago/agencia-crm/pkg/logger"
)

// ConversationUseCase casos de uso del log de conversaciones del chatbot:
// registro de mensajes entrantes, lectura de hilos y respuesta manual.
type ConversationUseCase struct {
	convRepo repository.ConversationRepository
	relay    MessageRelay
	log      *logger.Logger
}

// NewConversationUseCase construye el caso de uso.
func NewConversationUseCase(convRepo repository.ConversationRepository, relay MessageRelay, log *logger.Logger) *ConversationUseCase {
	return &ConversationUseCase{convRepo: convRepo, relay: relay, log: log}
}

// Inbound registra un mensaje entrante del relay. Crea la conversación si no
// existe (modo automático) y agrega el mensaje al hilo; el modo no se toca.
func (uc *ConversationUseCase) Inbound(ctx context.Context, in dto.InboundMessageRequest) (*dto.ConversationResponse, error) {
	if in.PalenqueID <= 0 || in.Telefono == "" || in.Mensaje == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.MensajeTipoTexto
	}
	conv, err := uc.convRepo.GetOrCreate(ctx, in.PalenqueID, in.Telefono, in.Nombre)
	if err != nil {
		return nil, err
	}
	msg := &entity.Message{
		ConversationID: conv.ID,
		Direccion:      entity.DireccionEntrante,
		Tipo:           tipo,
		Contenido:      in.Mensaje,
		CreatedAt:      time.Now(),
	}
	if err := uc.convRepo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	conv.LastMessageAt = msg.CreatedAt
	return toConversationResponse(conv, nil), nil
}

// List devuelve las conversaciones del scope, actividad más reciente primero.
func (uc *ConversationUseCase) List(ctx context.Context, scope authz.Scope, page dto.PageRequest) ([]dto.ConversationResponse, error) {
	page.DefaultPage()
	convs, err := uc.convRepo.ListByPalenque(ctx, scope.PalenqueID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConversationResponse, 0, len(convs))
	for _, c := range convs {
		out = append(out, *toConversationResponse(c, nil))
	}
	return out, nil
}

// Get devuelve el hilo completo con sus mensajes en orden de llegada.
func (uc *ConversationUseCase) Get(ctx context.Context, scope authz.Scope, id int64) (*dto.ConversationResponse, error) {
	conv, err := uc.convRepo.GetByID(ctx, scope.PalenqueID, id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}
	msgs, err := uc.convRepo.ListMessages(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	return toConversationResponse(conv, msgs), nil
}

// Reply envía una respuesta humana: entrega el texto al relay, registra el
// mensaje saliente y pasa el hilo a modo manual para que el bot deje de
// responder. Si el relay falla no se registra nada.
func (uc *ConversationUseCase) Reply(ctx context.Context, scope authz.Scope, id int64, mensaje string) (*dto.MessageResponse, error) {
	if mensaje == "" {
		return nil, domain.ErrInvalidInput
	}
	conv, err := uc.convRepo.GetByID(ctx, scope.PalenqueID, id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.relay.SendText(ctx, conv.Telefono, mensaje); err != nil {
		return nil, fmt.Errorf("relay de mensajería: %w", err)
	}

	msg := &entity.Message{
		ConversationID: conv.ID,
		Direccion:      entity.DireccionSaliente,
		Tipo:           entity.MensajeTipoTexto,
		Contenido:      mensaje,
		CreatedAt:      time.Now(),
	}
	if err := uc.convRepo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	if conv.Modo != entity.ModoManual {
		if err := uc.convRepo.SetModo(ctx, scope.PalenqueID, conv.ID, entity.ModoManual); err != nil {
			uc.log.Warn().Err(err).Int64("conversation_id", conv.ID).Msg("no se pudo pasar el hilo a manual")
		}
	}
	out := toMessageResponse(msg)
	return &out, nil
}

func toConversationResponse(c *entity.Conversation, msgs []*entity.Message) *dto.ConversationResponse {
	resp := &dto.ConversationResponse{
		ID:            c.ID,
		PalenqueID:    c.PalenqueID,
		Telefono:      c.Telefono,
		Nombre:        c.Nombre,
		Modo:          c.Modo,
		LastMessageAt: c.LastMessageAt,
	}
	for _, m := range msgs {
		resp.Mensajes = append(resp.Mensajes, toMessageResponse(m))
	}
	return resp
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID,
		Direccion: m.Direccion,
		Tipo:      m.Tipo,
		Contenido: m.Contenido,
		CreatedAt: m.CreatedAt,
	}
}
