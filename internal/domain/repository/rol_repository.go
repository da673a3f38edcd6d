package repository

import "github.com/autolavado/lavadero-api/internal/domain/entity"

// RolRepository define el puerto de persistencia para Rol.
type RolRepository interface {
	Create(rol *entity.Rol) error
	GetByID(id string) (*entity.Rol, error)
	GetByNombre(nombre string) (*entity.Rol, error)
	Update(rol *entity.Rol) error
	// Delete elimina el rol. El guard de roles de sistema corre en el caso de
	// uso, antes de llegar acá.
	Delete(id string) error
	List() ([]*entity.Rol, error)
}

// PermisoRepository define el puerto para el catálogo de permisos y la
// asignación rol↔permiso.
type PermisoRepository interface {
	List() ([]*entity.Permiso, error)
	ListByRol(rolID string) ([]*entity.Permiso, error)
	// CodigosByPerfil devuelve la lista aplanada de códigos de permiso del rol
	// del perfil (la llamada RPC de agregación del backend).
	CodigosByPerfil(perfilID string) ([]string, error)
	Asignar(rolID, permisoID string) error
	Revocar(rolID, permisoID string) error
}
