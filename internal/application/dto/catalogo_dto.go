package dto

import "time"

// Los precios viajan como string con coma decimal ("1.234,50"): el par
// parsear/formatear de pkg/money se aplica en cada borde.

// CreateProductoRequest alta de producto del panel admin.
type CreateProductoRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Precio      string `json:"precio"`
	Stock       int    `json:"stock"`
	Visible     bool   `json:"visible"`
	ImagenURL   string `json:"imagen_url"`
}

// UpdateProductoRequest edición parcial de producto. Campos nil no se tocan.
type UpdateProductoRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      *string `json:"precio"`
	Stock       *int    `json:"stock"`
	Visible     *bool   `json:"visible"`
	ImagenURL   *string `json:"imagen_url"`
}

// ProductoResponse representación de un producto.
type ProductoResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Precio      string    `json:"precio"`
	Stock       int       `json:"stock"`
	Visible     bool      `json:"visible"`
	Activo      bool      `json:"activo"`
	ImagenURL   string    `json:"imagen_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateServicioRequest alta de servicio agendable.
type CreateServicioRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Precio      string `json:"precio"`
	Visible     bool   `json:"visible"`
	ImagenURL   string `json:"imagen_url"`
}

// UpdateServicioRequest edición parcial de servicio.
type UpdateServicioRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      *string `json:"precio"`
	Visible     *bool   `json:"visible"`
	ImagenURL   *string `json:"imagen_url"`
}

// ServicioResponse representación de un servicio.
type ServicioResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Precio      string    `json:"precio"`
	Visible     bool      `json:"visible"`
	Activo      bool      `json:"activo"`
	ImagenURL   string    `json:"imagen_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
