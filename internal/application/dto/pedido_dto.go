package dto

import "time"

// CreatePedidoRequest compra de la tienda: líneas de producto y cantidad.
type CreatePedidoRequest struct {
	Items []PedidoItemRequest `json:"items"`
}

// PedidoItemRequest una línea del carrito.
type PedidoItemRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// UpdatePedidoRequest edición admin de estados de pago/envío.
type UpdatePedidoRequest struct {
	EstadoPago  *string `json:"estado_pago"`
	EstadoEnvio *string `json:"estado_envio"`
}

// PedidoResponse cabecera del pedido con sus líneas.
type PedidoResponse struct {
	ID            string                `json:"id"`
	ClienteID     string                `json:"cliente_id"`
	ClienteNombre string                `json:"cliente_nombre"`
	ClienteEmail  string                `json:"cliente_email"`
	Total         string                `json:"total"`
	EstadoPago    string                `json:"estado_pago"`
	EstadoEnvio   string                `json:"estado_envio"`
	Lineas        []PedidoLineaResponse `json:"lineas"`
	CreatedAt     time.Time             `json:"created_at"`
}

// PedidoLineaResponse una línea del pedido con el precio congelado a la compra.
type PedidoLineaResponse struct {
	ID             string `json:"id"`
	ProductoID     string `json:"producto_id"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precio_unitario"`
	Subtotal       string `json:"subtotal"`
}
