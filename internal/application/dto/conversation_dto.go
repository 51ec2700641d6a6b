package dto

import "time"

// InboundMessageRequest entrada del webhook de mensajería (mensaje entrante
// del chatbot). El relay identifica al palenque por su ID.
type InboundMessageRequest struct {
	PalenqueID int64  `json:"palenque_id" validate:"required"`
	Telefono   string `json:"telefono" validate:"required,max=20"`
	Nombre     string `json:"nombre" validate:"omitempty,max=200"`
	Tipo       string `json:"tipo" validate:"omitempty,oneof=texto imagen audio"`
	Mensaje    string `json:"mensaje" validate:"required"`
}

// ReplyRequest entrada para responder una conversación desde el dashboard.
type ReplyRequest struct {
	Mensaje string `json:"mensaje" validate:"required,max=4000"`
}

// MessageResponse salida de un mensaje del hilo.
type MessageResponse struct {
	ID        int64     `json:"id"`
	Direccion string    `json:"direccion"`
	Tipo      string    `json:"tipo"`
	Contenido string    `json:"contenido"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationResponse salida de una conversación; Mensajes solo se llena en
// el detalle, no en el listado.
type ConversationResponse struct {
	ID            int64             `json:"id"`
	PalenqueID    int64             `json:"palenque_id"`
	Telefono      string            `json:"telefono"`
	Nombre        string            `json:"nombre,omitempty"`
	Modo          string            `json:"modo"`
	LastMessageAt time.Time         `json:"last_message_at"`
	Mensajes      []MessageResponse `json:"mensajes,omitempty"`
}
