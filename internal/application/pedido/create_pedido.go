// Package pedido implementa la compra de la tienda. La escritura
// cabecera+líneas no es atómica del lado del backend: se modela como una saga
// explícita en la que el fallo de una línea dispara la compensación (borrar la
// cabecera) para que no quede observable un pedido huérfano sin líneas.
package pedido

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/saga"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
	"github.com/autolavado/lavadero-api/pkg/money"
)

// UseCase creación y consulta de pedidos.
type UseCase struct {
	pedidos   repository.PedidoRepository
	productos repository.ProductoRepository
	perfiles  repository.PerfilRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(pedidos repository.PedidoRepository, productos repository.ProductoRepository, perfiles repository.PerfilRepository) *UseCase {
	return &UseCase{pedidos: pedidos, productos: productos, perfiles: perfiles}
}

// Crear valida el carrito, congela precios y datos del cliente, y ejecuta la
// saga: insertar cabecera, descontar stock e insertar líneas. El precio
// unitario queda denormalizado para sobrevivir a cambios posteriores.
func (uc *UseCase) Crear(ctx context.Context, clienteID string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	perfil, err := uc.perfiles.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}

	// Validación y lectura de productos fuera de la saga (solo lectura). Las
	// cantidades se agregan por producto: el mismo ítem repetido en el carrito
	// compite por el mismo stock.
	cantidadPorProducto := make(map[string]int, len(in.Items))
	productosPorID := make(map[string]*entity.Producto, len(in.Items))
	for _, item := range in.Items {
		if item.ProductoID == "" || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		cantidadPorProducto[item.ProductoID] += item.Cantidad
		if _, visto := productosPorID[item.ProductoID]; visto {
			continue
		}
		producto, err := uc.productos.GetByID(item.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil || !producto.Activo {
			return nil, domain.ErrNotFound
		}
		productosPorID[item.ProductoID] = producto
	}
	total := decimal.Zero
	for id, cantidad := range cantidadPorProducto {
		producto := productosPorID[id]
		if producto.Stock < cantidad {
			return nil, domain.ErrConflict
		}
		total = total.Add(producto.Precio.Mul(decimal.NewFromInt(int64(cantidad))))
	}

	now := time.Now()
	cabecera := &entity.Pedido{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		ClienteNombre: perfil.NombreCompleto(),
		ClienteEmail:  perfil.Email,
		Total:         total,
		EstadoPago:    entity.PagoPendiente,
		EstadoEnvio:   entity.EnvioPendiente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	lineas := make([]*entity.PedidoProducto, 0, len(in.Items))
	for _, item := range in.Items {
		lineas = append(lineas, &entity.PedidoProducto{
			ID:             uuid.New().String(),
			PedidoID:       cabecera.ID,
			ProductoID:     item.ProductoID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: productosPorID[item.ProductoID].Precio,
		})
	}

	s := saga.New()
	s.Add("insertar pedido",
		func() error { return uc.pedidos.Create(cabecera) },
		func() error { return uc.pedidos.Delete(cabecera.ID) },
	)
	for i := range lineas {
		linea := lineas[i]
		producto := productosPorID[linea.ProductoID]
		cantidad := linea.Cantidad
		s.Add("descontar stock "+producto.ID,
			func() error {
				producto.Stock -= cantidad
				producto.UpdatedAt = time.Now()
				return uc.productos.Update(producto)
			},
			func() error {
				producto.Stock += cantidad
				return uc.productos.Update(producto)
			},
		)
		s.Add("insertar línea "+linea.ID,
			func() error { return uc.pedidos.CreateLinea(linea) },
			func() error { return uc.pedidos.DeleteLinea(linea.ID) },
		)
	}
	if err := s.Run(); err != nil {
		return nil, err
	}
	return toResponse(cabecera, lineas), nil
}

// GetByID devuelve el pedido con sus líneas.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	cabecera, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cabecera == nil {
		return nil, nil
	}
	lineas, err := uc.pedidos.GetLineas(id)
	if err != nil {
		return nil, err
	}
	return toResponse(cabecera, lineas), nil
}

// List todos los pedidos (panel admin). Las líneas se cargan por pedido al
// pedir el detalle, no acá.
func (uc *UseCase) List(ctx context.Context) ([]dto.PedidoResponse, error) {
	lista, err := uc.pedidos.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *toResponse(p, nil))
	}
	return items, nil
}

// ActualizarEstados edición admin de estado de pago y envío.
func (uc *UseCase) ActualizarEstados(ctx context.Context, id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	cabecera, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cabecera == nil {
		return nil, nil
	}
	if in.EstadoPago != nil {
		switch *in.EstadoPago {
		case entity.PagoPendiente, entity.PagoAprobado, entity.PagoRechazado:
			cabecera.EstadoPago = *in.EstadoPago
		default:
			return nil, domain.ErrEstadoInvalido
		}
	}
	if in.EstadoEnvio != nil {
		switch *in.EstadoEnvio {
		case entity.EnvioPendiente, entity.EnvioEnCamino, entity.EnvioEntregado:
			cabecera.EstadoEnvio = *in.EstadoEnvio
		default:
			return nil, domain.ErrEstadoInvalido
		}
	}
	cabecera.UpdatedAt = time.Now()
	if err := uc.pedidos.Update(cabecera); err != nil {
		return nil, err
	}
	return toResponse(cabecera, nil), nil
}

func toResponse(p *entity.Pedido, lineas []*entity.PedidoProducto) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:            p.ID,
		ClienteID:     p.ClienteID,
		ClienteNombre: p.ClienteNombre,
		ClienteEmail:  p.ClienteEmail,
		Total:         money.Format(p.Total),
		EstadoPago:    p.EstadoPago,
		EstadoEnvio:   p.EstadoEnvio,
		Lineas:        make([]dto.PedidoLineaResponse, 0, len(lineas)),
		CreatedAt:     p.CreatedAt,
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.PedidoLineaResponse{
			ID:             l.ID,
			ProductoID:     l.ProductoID,
			Cantidad:       l.Cantidad,
			PrecioUnitario: money.Format(l.PrecioUnitario),
			Subtotal:       money.Format(l.Subtotal()),
		})
	}
	return resp
}
