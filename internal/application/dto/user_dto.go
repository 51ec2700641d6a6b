package dto

import "time"

// RegisterRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// PalenqueID es obligatorio solo para el rol palenque.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Nombre     string `json:"nombre" validate:"omitempty,max=200"`
	Role       string `json:"role" validate:"required,oneof=superadmin admin palenque"`
	PalenqueID *int64 `json:"palenque_id"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para cambio de contraseña del usuario en sesión.
type ChangePasswordRequest struct {
	PasswordActual string `json:"password_actual" validate:"required"`
	PasswordNueva  string `json:"password_nueva" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Nombre     string    `json:"nombre"`
	Role       string    `json:"role"`
	PalenqueID *int64    `json:"palenque_id"`
	Activo     bool      `json:"activo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
