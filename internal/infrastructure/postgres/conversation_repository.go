package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

var _ repository.ConversationRepository = (*ConversationRepo)(nil)

// ConversationRepo implementación del puerto ConversationRepository sobre PostgreSQL.
type ConversationRepo struct {
	q Querier
}

// NewConversationRepository construye el adaptador de persistencia para conversaciones.
func NewConversationRepository(q Querier) *ConversationRepo {
	return &ConversationRepo{q: q}
}

const convCols = `id, palenque_id, telefono, nombre, modo, last_message_at, created_at, updated_at`

// GetOrCreate devuelve la conversación del teléfono para el palenque,
// creándola en modo automático si no existía. El ON CONFLICT evita
// duplicados cuando dos webhooks del mismo número llegan a la vez.
func (r *ConversationRepo) GetOrCreate(ctx context.Context, palenqueID int64, telefono, nombre string) (*entity.Conversation, error) {
	query := `
		INSERT INTO conversations (palenque_id, telefono, nombre, modo, last_message_at, created_at, updated_at)
		VALUES ($1, $2, $3, 'automatico', now(), now(), now())
		ON CONFLICT (palenque_id, telefono)
		DO UPDATE SET nombre = CASE WHEN conversations.nombre = '' THEN EXCLUDED.nombre ELSE conversations.nombre END
		RETURNING ` + convCols
	var c entity.Conversation
	err := r.q.QueryRow(ctx, query, palenqueID, telefono, nombre).Scan(
		&c.ID, &c.PalenqueID, &c.Telefono, &c.Nombre, &c.Modo,
		&c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create conversation: %w", err)
	}
	return &c, nil
}

// GetByID obtiene una conversación verificando que pertenezca al palenque.
// Devuelve nil, nil si no existe o es de otro tenant.
func (r *ConversationRepo) GetByID(ctx context.Context, palenqueID, id int64) (*entity.Conversation, error) {
	query := `SELECT ` + convCols + ` FROM conversations WHERE id = $1 AND palenque_id = $2`
	var c entity.Conversation
	err := r.q.QueryRow(ctx, query, id, palenqueID).Scan(
		&c.ID, &c.PalenqueID, &c.Telefono, &c.Nombre, &c.Modo,
		&c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// ListByPalenque lista conversaciones del palenque, las de actividad más reciente primero.
func (r *ConversationRepo) ListByPalenque(ctx context.Context, palenqueID int64, limit, offset int) ([]*entity.Conversation, error) {
	query := `SELECT ` + convCols + ` FROM conversations WHERE palenque_id = $1
		ORDER BY last_message_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, palenqueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Conversation
	for rows.Next() {
		var c entity.Conversation
		if err := rows.Scan(&c.ID, &c.PalenqueID, &c.Telefono, &c.Nombre, &c.Modo,
			&c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// AppendMessage agrega un mensaje al hilo y actualiza last_message_at.
// La secuencia es append-only: no existen update ni delete de mensajes.
func (r *ConversationRepo) AppendMessage(ctx context.Context, msg *entity.Message) error {
	query := `
		INSERT INTO messages (conversation_id, direccion, tipo, contenido, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		msg.ConversationID, msg.Direccion, msg.Tipo, msg.Contenido, msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`UPDATE conversations SET last_message_at = $2, updated_at = now() WHERE id = $1`,
		msg.ConversationID, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	return nil
}

// ListMessages devuelve los mensajes del hilo en orden de llegada.
func (r *ConversationRepo) ListMessages(ctx context.Context, conversationID int64) ([]*entity.Message, error) {
	query := `
		SELECT id, conversation_id, direccion, tipo, contenido, created_at
		FROM messages WHERE conversation_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Direccion, &m.Tipo, &m.Contenido, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SetModo cambia el modo del hilo verificando tenant.
func (r *ConversationRepo) SetModo(ctx context.Context, palenqueID, id int64, modo string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE conversations SET modo = $3, updated_at = now() WHERE id = $1 AND palenque_id = $2`,
		id, palenqueID, modo,
	)
	if err != nil {
		return fmt.Errorf("set conversation modo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
