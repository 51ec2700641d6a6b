package dto

import "time"

// CreatePalenqueRequest entrada para dar de alta un palenque (solo admin).
type CreatePalenqueRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Contacto  string `json:"contacto" validate:"omitempty,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono" validate:"omitempty,max=20"`
	Direccion string `json:"direccion" validate:"omitempty,max=300"`
	Plan      string `json:"plan" validate:"omitempty,oneof=basico premium"`
}

// UpdatePalenqueRequest entrada para actualizar un palenque.
type UpdatePalenqueRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Contacto  string `json:"contacto" validate:"omitempty,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono" validate:"omitempty,max=20"`
	Direccion string `json:"direccion" validate:"omitempty,max=300"`
	Plan      string `json:"plan" validate:"omitempty,oneof=basico premium"`
}

// PalenqueResponse salida de un palenque.
type PalenqueResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Contacto  string    `json:"contacto,omitempty"`
	Email     string    `json:"email,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Plan      string    `json:"plan"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
