package repository

import "github.com/autolavado/lavadero-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// SetActivo es el soft delete del panel de productos.
	SetActivo(id string, activo bool) error
	// List devuelve la colección completa ordenada por nombre; con soloVisibles
	// filtra la vitrina pública.
	List(soloVisibles bool) ([]*entity.Producto, error)
}

// ServicioRepository define el puerto de persistencia para Servicio.
type ServicioRepository interface {
	Create(servicio *entity.Servicio) error
	GetByID(id string) (*entity.Servicio, error)
	Update(servicio *entity.Servicio) error
	SetActivo(id string, activo bool) error
	List(soloVisibles bool) ([]*entity.Servicio, error)
}
