package entity

import "time"

// NewsletterSubscriber es un suscriptor del boletín del sitio. Vive en un
// archivo JSON plano, no en la base relacional.
type NewsletterSubscriber struct {
	ID     string    `json:"id"` // UUID
	Email  string    `json:"email"`
	Nombre string    `json:"nombre,omitempty"`
	AltaEn time.Time `json:"alta_en"`
	Activo bool      `json:"activo"`
}
