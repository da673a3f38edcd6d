package repository

import "github.com/autolavado/lavadero-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido y sus líneas.
// Delete existe solo como compensación de la saga de creación: si falla el
// insert de una línea, la cabecera se borra para no dejar pedidos huérfanos.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	CreateLinea(linea *entity.PedidoProducto) error
	Delete(id string) error
	DeleteLinea(id string) error
	GetByID(id string) (*entity.Pedido, error)
	GetLineas(pedidoID string) ([]*entity.PedidoProducto, error)
	Update(pedido *entity.Pedido) error
	List() ([]*entity.Pedido, error)
}

// AuditoriaRepository define el puerto para el registro de auditoría.
type AuditoriaRepository interface {
	Create(registro *entity.Auditoria) error
	List(limit int) ([]*entity.Auditoria, error)
}
