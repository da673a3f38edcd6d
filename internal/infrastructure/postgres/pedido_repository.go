package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
// Cabecera y líneas se escriben en llamadas separadas; la atomicidad la
// maneja la saga del caso de uso, no una transacción.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera de un pedido.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, cliente_id, cliente_nombre, cliente_email, total, estado_pago, estado_envio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.ClienteID, pedido.ClienteNombre, pedido.ClienteEmail,
		pedido.Total, pedido.EstadoPago, pedido.EstadoEnvio, pedido.CreatedAt, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateLinea persiste una línea del pedido.
func (r *PedidoRepo) CreateLinea(linea *entity.PedidoProducto) error {
	query := `
		INSERT INTO pedido_productos (id, pedido_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		linea.ID, linea.PedidoID, linea.ProductoID, linea.Cantidad, linea.PrecioUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert linea pedido: %w", err)
	}
	return nil
}

// Delete borra la cabecera (compensación de la saga de creación). Las líneas
// ya insertadas caen por FK en cascada.
func (r *PedidoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}

// DeleteLinea borra una línea (compensación de la saga de creación).
func (r *PedidoRepo) DeleteLinea(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pedido_productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete linea pedido: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, cliente_id, cliente_nombre, cliente_email, total, estado_pago, estado_envio, created_at, updated_at
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClienteID, &p.ClienteNombre, &p.ClienteEmail,
		&p.Total, &p.EstadoPago, &p.EstadoEnvio, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// GetLineas devuelve las líneas de un pedido.
func (r *PedidoRepo) GetLineas(pedidoID string) ([]*entity.PedidoProducto, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, precio_unitario
		FROM pedido_productos WHERE pedido_id = $1`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("get lineas pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.PedidoProducto
	for rows.Next() {
		var l entity.PedidoProducto
		if err := rows.Scan(&l.ID, &l.PedidoID, &l.ProductoID, &l.Cantidad, &l.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan linea pedido: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza los estados de pago y envío de la cabecera.
func (r *PedidoRepo) Update(pedido *entity.Pedido) error {
	query := `
		UPDATE pedidos SET estado_pago = $2, estado_envio = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.EstadoPago, pedido.EstadoEnvio, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// List lista todos los pedidos, el más reciente primero.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `
		SELECT id, cliente_id, cliente_nombre, cliente_email, total, estado_pago, estado_envio, created_at, updated_at
		FROM pedidos ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.ClienteID, &p.ClienteNombre, &p.ClienteEmail,
			&p.Total, &p.EstadoPago, &p.EstadoEnvio, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
