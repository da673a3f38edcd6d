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

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// ServicioRepo implementación del puerto ServicioRepository sobre PostgreSQL (usable con pool o tx).
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador de persistencia para servicios. Pasar pool o tx (Querier).
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServicioRepo) Create(servicio *entity.Servicio) error {
	query := `
		INSERT INTO servicios (id, nombre, descripcion, precio, visible, activo, imagen_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		servicio.ID, servicio.Nombre, servicio.Descripcion, servicio.Precio,
		servicio.Visible, servicio.Activo, servicio.ImagenURL, servicio.CreatedAt, servicio.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServicioRepo) GetByID(id string) (*entity.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, precio, visible, activo, imagen_url, created_at, updated_at
		FROM servicios WHERE id = $1`
	var s entity.Servicio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nombre, &s.Descripcion, &s.Precio,
		&s.Visible, &s.Activo, &s.ImagenURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return &s, nil
}

// Update actualiza un servicio existente.
func (r *ServicioRepo) Update(servicio *entity.Servicio) error {
	query := `
		UPDATE servicios SET nombre = $2, descripcion = $3, precio = $4, visible = $5, imagen_url = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		servicio.ID, servicio.Nombre, servicio.Descripcion, servicio.Precio,
		servicio.Visible, servicio.ImagenURL, servicio.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update servicio: %w", err)
	}
	return nil
}

// SetActivo soft delete del servicio.
func (r *ServicioRepo) SetActivo(id string, activo bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE servicios SET activo = $2, updated_at = now() WHERE id = $1`,
		id, activo,
	)
	if err != nil {
		return fmt.Errorf("set activo servicio: %w", err)
	}
	return nil
}

// List lista servicios ordenados por nombre. Con soloVisibles filtra la
// vitrina pública.
func (r *ServicioRepo) List(soloVisibles bool) ([]*entity.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, precio, visible, activo, imagen_url, created_at, updated_at
		FROM servicios WHERE activo = true ORDER BY nombre`
	if soloVisibles {
		query = `
		SELECT id, nombre, descripcion, precio, visible, activo, imagen_url, created_at, updated_at
		FROM servicios WHERE activo = true AND visible = true ORDER BY nombre`
	}
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servicio
	for rows.Next() {
		var s entity.Servicio
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.Precio,
			&s.Visible, &s.Activo, &s.ImagenURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
