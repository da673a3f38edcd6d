package entity

import "time"

// Rol agrupa permisos y se asigna a perfiles (muchos perfiles → un rol).
// EsSistema protege el rol contra eliminación; la edición sigue permitida.
type Rol struct {
	ID          string
	Nombre      string
	Descripcion string
	EsSistema   bool
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permiso es una acción permitida sobre un módulo, identificada por su código
// "modulo.accion" (ej. "productos.crear"). El catálogo es estático: se siembra
// por migración y no se crea desde la API.
type Permiso struct {
	ID          string
	Codigo      string
	Nombre      string
	Descripcion string
	Modulo      string
}

// RolPermiso vincula un rol con un permiso (join muchos a muchos).
type RolPermiso struct {
	RolID     string
	PermisoID string
	CreatedAt time.Time
}
