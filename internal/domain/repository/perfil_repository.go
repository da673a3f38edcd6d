package repository

import "github.com/autolavado/lavadero-api/internal/domain/entity"

// PerfilRepository define el puerto de persistencia para Perfil (DIP).
type PerfilRepository interface {
	Create(perfil *entity.Perfil) error
	GetByID(id string) (*entity.Perfil, error)
	GetByEmail(email string) (*entity.Perfil, error)
	// ExistsByEmail es el chequeo previo de existencia usado en el registro.
	ExistsByEmail(email string) (bool, error)
	Update(perfil *entity.Perfil) error
	// SetActivo desactiva o reactiva el perfil (soft delete, nunca se borra).
	SetActivo(id string, activo bool) error
	List() ([]*entity.Perfil, error)
	// EmailsPorIDs mapea ids de usuario a email para enriquecer reportes.
	EmailsPorIDs(ids []string) (map[string]string, error)
}
