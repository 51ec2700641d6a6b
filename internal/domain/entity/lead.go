package entity

import "time"

// Estados del funnel de un lead. El orden es el del embudo de conversión.
const (
	LeadEstadoNuevo      = "nuevo"
	LeadEstadoContactado = "contactado"
	LeadEstadoRespondio  = "respondio"
	LeadEstadoConvertido = "convertido"
	LeadEstadoInactivo   = "inactivo"
	LeadEstadoOptOut     = "opt_out"
)

// LeadEstados lista los seis estados válidos en orden de funnel.
// El reporte de funnel siempre incluye los seis, con 0 cuando no hay filas.
var LeadEstados = []string{
	LeadEstadoNuevo,
	LeadEstadoContactado,
	LeadEstadoRespondio,
	LeadEstadoConvertido,
	LeadEstadoInactivo,
	LeadEstadoOptOut,
}

// EstadoValido indica si s es uno de los seis estados del enum.
func EstadoValido(s string) bool {
	for _, e := range LeadEstados {
		if e == s {
			return true
		}
	}
	return false
}

// Orígenes de captura conocidos (el campo es abierto; estos son los que
// generan el sitio y el chatbot).
const (
	LeadOrigenFormulario = "formulario"
	LeadOrigenQR         = "qr"
	LeadOrigenWhatsApp   = "whatsapp"
	LeadOrigenWebhook    = "webhook"
)

// Lead representa un prospecto capturado para un palenque. Nunca se elimina
// físicamente: el estado opt_out o inactivo lo saca del funnel activo.
type Lead struct {
	ID                      int64
	PalenqueID              int64
	Nombre                  string
	Telefono                string
	Email                   string // opcional
	Origen                  string
	Estado                  string // ver constantes LeadEstado*
	ExperienciaCalificacion int    // 1..5, default 5
	AceptoOfertas           bool   // default true
	Notas                   string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
