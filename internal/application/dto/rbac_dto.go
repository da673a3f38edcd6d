package dto

import "time"

// CreateRolRequest alta de rol.
type CreateRolRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// UpdateRolRequest edición parcial de rol. EsSistema no es editable por API.
type UpdateRolRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

// RolResponse representación de un rol.
type RolResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	EsSistema   bool      `json:"es_sistema"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PermisoResponse entrada del catálogo de permisos.
type PermisoResponse struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Modulo      string `json:"modulo"`
}

// DiffPermisosRequest es el mapa de cambios pendientes del panel de permisos:
// qué permisos otorgar y cuáles revocar para un rol, aplicado como saga.
type DiffPermisosRequest struct {
	Otorgar []string `json:"otorgar"`
	Revocar []string `json:"revocar"`
}
