package dto

import "time"

// RegisterRequest datos de alta de un perfil.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	DNI      string `json:"dni"`
	Telefono string `json:"telefono"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token más el perfil y permisos cargados al iniciar sesión.
type LoginResponse struct {
	Token    string         `json:"token"`
	User     PerfilResponse `json:"user"`
	Permisos []string       `json:"permisos"`
}

// ResetPasswordRequest pedido de restablecimiento por email.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordConfirmRequest consumo del token de restablecimiento.
type ResetPasswordConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdatePasswordRequest cambio de contraseña del usuario autenticado.
type UpdatePasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNueva  string `json:"password_nueva"`
}

// PerfilResponse representación pública de un perfil.
type PerfilResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	DNI       string    `json:"dni"`
	Telefono  string    `json:"telefono"`
	Activo    bool      `json:"activo"`
	RolID     string    `json:"rol_id"`
	RolNombre string    `json:"rol_nombre,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdatePerfilRequest edición de perfil (admin o autoservicio). Campos nil no se tocan.
type UpdatePerfilRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	DNI      *string `json:"dni"`
	Telefono *string `json:"telefono"`
	RolID    *string `json:"rol_id"`
}
