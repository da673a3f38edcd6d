package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un artículo vendible de la tienda (ceras, shampoos, accesorios).
// Visible controla la vitrina pública; Activo=false es el soft delete.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       int
	Visible     bool
	Activo      bool
	ImagenURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Servicio es una prestación agendable del lavadero (lavado básico, detailing).
// No maneja stock; la capacidad se controla por turnos.
type Servicio struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Visible     bool
	Activo      bool
	ImagenURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
