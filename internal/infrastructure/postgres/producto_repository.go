package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, descripcion, precio, stock, visible, activo, imagen_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.Visible, producto.Activo, producto.ImagenURL, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, descripcion, precio, stock, visible, activo, imagen_url, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock,
		&p.Visible, &p.Activo, &p.ImagenURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (incluye stock: el descuento por
// pedido y su compensación pasan por acá).
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio = $4, stock = $5, visible = $6, imagen_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.Visible, producto.ImagenURL, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SetActivo soft delete del producto.
func (r *ProductoRepo) SetActivo(id string, activo bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = $2, updated_at = now() WHERE id = $1`,
		id, activo,
	)
	if err != nil {
		return fmt.Errorf("set activo producto: %w", err)
	}
	return nil
}

// List lista productos ordenados por nombre. Con soloVisibles filtra la
// vitrina pública (visible y activo).
func (r *ProductoRepo) List(soloVisibles bool) ([]*entity.Producto, error) {
	query := `
		SELECT id, nombre, descripcion, precio, stock, visible, activo, imagen_url, created_at, updated_at
		FROM productos WHERE activo = true ORDER BY nombre`
	if soloVisibles {
		query = `
		SELECT id, nombre, descripcion, precio, stock, visible, activo, imagen_url, created_at, updated_at
		FROM productos WHERE activo = true AND visible = true ORDER BY nombre`
	}
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock,
			&p.Visible, &p.Activo, &p.ImagenURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
