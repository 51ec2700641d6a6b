package dto

import "time"

// LeadCaptureRequest entrada del formulario público o del webhook de captura.
// ExperienciaCalificacion y AceptoOfertas son punteros para distinguir
// "no enviado" (se aplica el default 5 / true) de un cero/false explícito.
type LeadCaptureRequest struct {
	PalenqueID              int64  `json:"palenque_id" validate:"required"`
	Nombre                  string `json:"nombre" validate:"required,max=200"`
	Telefono                string `json:"telefono" validate:"required,max=20"`
	Email                   string `json:"email" validate:"omitempty,email"`
	Origen                  string `json:"origen" validate:"omitempty,max=50"`
	ExperienciaCalificacion *int   `json:"experiencia_calificacion" validate:"omitempty,min=1,max=5"`
	AceptoOfertas           *bool  `json:"acepto_ofertas"`
	Notas                   string `json:"notas" validate:"omitempty,max=2000"`
}

// LeadCaptureForward payload que se reenvía al webhook de automatización,
// ya con los defaults aplicados.
type LeadCaptureForward struct {
	LeadID                  int64     `json:"lead_id"`
	PalenqueID              int64     `json:"palenque_id"`
	Nombre                  string    `json:"nombre"`
	Telefono                string    `json:"telefono"`
	Email                   string    `json:"email,omitempty"`
	Origen                  string    `json:"origen"`
	ExperienciaCalificacion int       `json:"experiencia_calificacion"`
	AceptoOfertas           bool      `json:"acepto_ofertas"`
	Fecha                   time.Time `json:"fecha"`
}

// UpdateLeadEstadoRequest entrada para la transición de estado de un lead.
type UpdateLeadEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=nuevo contactado respondio convertido inactivo opt_out"`
}

// UpdateLeadNotasRequest entrada para actualizar las notas de seguimiento.
type UpdateLeadNotasRequest struct {
	Notas string `json:"notas" validate:"max=2000"`
}

// LeadListRequest filtros de listado.
type LeadListRequest struct {
	PageRequest
	Estado string `query:"estado"`
	Origen string `query:"origen"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID                      int64     `json:"id"`
	PalenqueID              int64     `json:"palenque_id"`
	Nombre                  string    `json:"nombre"`
	Telefono                string    `json:"telefono"`
	Email                   string    `json:"email,omitempty"`
	Origen                  string    `json:"origen"`
	Estado                  string    `json:"estado"`
	ExperienciaCalificacion int       `json:"experiencia_calificacion"`
	AceptoOfertas           bool      `json:"acepto_ofertas"`
	Notas                   string    `json:"notas,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
