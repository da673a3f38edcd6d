package repository

import "github.com/autolavado/lavadero-api/internal/domain/entity"

// TurnoRepository define el puerto de persistencia para Turno.
type TurnoRepository interface {
	Create(turno *entity.Turno) error
	GetByID(id string) (*entity.Turno, error)
	Update(turno *entity.Turno) error
	List() ([]*entity.Turno, error)
	ListByCliente(clienteID string) ([]*entity.Turno, error)
	// ExisteConflicto consulta si hay un turno Pendiente o Confirmado en el
	// slot (fecha, hora). Es un chequeo leer-y-decidir sin lock: dos reservas
	// casi simultáneas pueden pasar ambas. Ese comportamiento es intencional.
	ExisteConflicto(fecha, hora string) (bool, error)
}
