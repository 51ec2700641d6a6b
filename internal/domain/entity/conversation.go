package entity

import "time"

// Modos de una conversación del chatbot.
const (
	ModoAutomatico = "automatico" // responde el bot
	ModoManual     = "manual"     // un humano tomó el hilo; el bot no responde
)

// Direcciones de un mensaje.
const (
	DireccionEntrante = "entrante"
	DireccionSaliente = "saliente"
)

// Tipos de contenido de mensaje.
const (
	MensajeTipoTexto  = "texto"
	MensajeTipoImagen = "imagen"
	MensajeTipoAudio  = "audio"
)

// Conversation representa un hilo de chat de WhatsApp con un contacto,
// acotado a un palenque. El modo pasa a manual cuando un humano responde
// y no vuelve a automático por sí solo.
type Conversation struct {
	ID            int64
	PalenqueID    int64
	Telefono      string
	Nombre        string
	Modo          string // automatico | manual
	LastMessageAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Message representa un mensaje dentro de una conversación. La secuencia es
// append-only y ordenada por CreatedAt/ID; los mensajes no se editan ni borran.
type Message struct {
	ID             int64
	ConversationID int64
	Direccion      string // entrante | saliente
	Tipo           string // texto, imagen, audio
	Contenido      string
	CreatedAt      time.Time
}
