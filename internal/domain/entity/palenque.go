package entity

import "time"

// Planes comerciales disponibles para un palenque.
const (
	PlanBasico  = "basico"
	PlanPremium = "premium"
)

// Palenque representa un negocio cliente de la agencia (tenant, unidad de
// aislamiento de datos). Es dueño de sus usuarios, leads, conversaciones y
// productos; ningún dato suyo es visible para otro palenque.
type Palenque struct {
	ID        int64
	Nombre    string
	Contacto  string // persona de contacto
	Email     string
	Telefono  string
	Direccion string
	Plan      string // ver constantes Plan*
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
