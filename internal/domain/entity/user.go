package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RolePalenque   = "palenque"
)

// User representa un usuario del sistema. Los roles admin y superadmin operan
// cross-tenant (PalenqueID nil); el rol palenque queda atado a su tenant.
// La invariante "rol palenque sin tenant" se rechaza al resolver el scope de
// datos, no en el login.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Nombre       string
	Role         string // superadmin, admin, palenque
	PalenqueID   *int64 // nil para admin/superadmin
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
