package dto

import "time"

// NewsletterSubscribeRequest entrada de suscripción al boletín.
type NewsletterSubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Nombre string `json:"nombre" validate:"omitempty,max=200"`
}

// NewsletterSubscriberResponse salida de un suscriptor.
type NewsletterSubscriberResponse struct {
	ID     string    `json:"id"`
	Email  string    `json:"email"`
	Nombre string    `json:"nombre,omitempty"`
	AltaEn time.Time `json:"alta_en"`
}
