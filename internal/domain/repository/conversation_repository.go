package repository

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// ConversationRepository define el puerto de persistencia para conversaciones
// y mensajes del chatbot. Los mensajes son append-only: no hay update ni delete.
type ConversationRepository interface {
	// GetOrCreate devuelve la conversación del teléfono para el palenque,
	// creándola en modo automático si no existe.
	GetOrCreate(ctx context.Context, palenqueID int64, telefono, nombre string) (*entity.Conversation, error)
	GetByID(ctx context.Context, palenqueID, id int64) (*entity.Conversation, error)
	ListByPalenque(ctx context.Context, palenqueID int64, limit, offset int) ([]*entity.Conversation, error)
	// AppendMessage agrega un mensaje al hilo y actualiza last_message_at.
	AppendMessage(ctx context.Context, msg *entity.Message) error
	ListMessages(ctx context.Context, conversationID int64) ([]*entity.Message, error)
	// SetModo cambia el modo del hilo (automatico|manual) verificando tenant.
	SetModo(ctx context.Context, palenqueID, id int64, modo string) error
}
