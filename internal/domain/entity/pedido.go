package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago y envío de un pedido.
const (
	PagoPendiente = "Pendiente"
	PagoAprobado  = "Aprobado"
	PagoRechazado = "Rechazado"

	EnvioPendiente = "Pendiente"
	EnvioEnCamino  = "EnCamino"
	EnvioEntregado = "Entregado"
)

// Pedido es la cabecera de una compra de la tienda. Los datos del cliente se
// copian al crear el pedido para que sobrevivan a ediciones posteriores del perfil.
type Pedido struct {
	ID            string
	ClienteID     string
	ClienteNombre string
	ClienteEmail  string
	Total         decimal.Decimal
	EstadoPago    string
	EstadoEnvio   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PedidoProducto es una línea del pedido. PrecioUnitario queda denormalizado al
// momento de la compra para sobrevivir a cambios de precio del producto.
type PedidoProducto struct {
	ID             string
	PedidoID       string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario de la línea.
func (l *PedidoProducto) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}
