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

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo implementación del puerto RolRepository sobre PostgreSQL (usable con pool o tx).
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RolRepo) Create(rol *entity.Rol) error {
	query := `
		INSERT INTO roles (id, nombre, descripcion, es_sistema, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rol.ID, rol.Nombre, rol.Descripcion, rol.EsSistema, rol.Activo, rol.CreatedAt, rol.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rol: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RolRepo) GetByID(id string) (*entity.Rol, error) {
	query := `
		SELECT id, nombre, descripcion, es_sistema, activo, created_at, updated_at
		FROM roles WHERE id = $1`
	var rol entity.Rol
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.EsSistema, &rol.Activo, &rol.CreatedAt, &rol.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return &rol, nil
}

// GetByNombre obtiene un rol por nombre (ej. el rol Cliente al registrarse).
func (r *RolRepo) GetByNombre(nombre string) (*entity.Rol, error) {
	query := `
		SELECT id, nombre, descripcion, es_sistema, activo, created_at, updated_at
		FROM roles WHERE nombre = $1`
	var rol entity.Rol
	err := r.q.QueryRow(context.Background(), query, nombre).Scan(
		&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.EsSistema, &rol.Activo, &rol.CreatedAt, &rol.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol by nombre: %w", err)
	}
	return &rol, nil
}

// Update actualiza nombre y descripción. es_sistema nunca se modifica desde la API.
func (r *RolRepo) Update(rol *entity.Rol) error {
	query := `
		UPDATE roles SET nombre = $2, descripcion = $3, activo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rol.ID, rol.Nombre, rol.Descripcion, rol.Activo, rol.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update rol: %w", err)
	}
	return nil
}

// Delete elimina un rol por ID. Los vínculos rol_permisos caen por FK en cascada.
func (r *RolRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rol: %w", err)
	}
	return nil
}

// List lista todos los roles ordenados por nombre.
func (r *RolRepo) List() ([]*entity.Rol, error) {
	query := `
		SELECT id, nombre, descripcion, es_sistema, activo, created_at, updated_at
		FROM roles ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.EsSistema,
			&rol.Activo, &rol.CreatedAt, &rol.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}
