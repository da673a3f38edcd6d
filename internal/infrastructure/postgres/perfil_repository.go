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

var _ repository.PerfilRepository = (*PerfilRepo)(nil)

// PerfilRepo implementación del puerto PerfilRepository sobre PostgreSQL (usable con pool o tx).
type PerfilRepo struct {
	q Querier
}

// NewPerfilRepository construye el adaptador de persistencia para perfiles. Pasar pool o tx (Querier).
func NewPerfilRepository(q Querier) *PerfilRepo {
	return &PerfilRepo{q: q}
}

// Create persiste un nuevo perfil.
func (r *PerfilRepo) Create(perfil *entity.Perfil) error {
	query := `
		INSERT INTO perfiles (id, email, password_hash, nombre, apellido, dni, telefono, activo, rol_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		perfil.ID, perfil.Email, perfil.PasswordHash, perfil.Nombre, perfil.Apellido,
		perfil.DNI, perfil.Telefono, perfil.Activo, perfil.RolID, perfil.CreatedAt, perfil.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert perfil: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *PerfilRepo) GetByID(id string) (*entity.Perfil, error) {
	query := `
		SELECT id, email, password_hash, nombre, apellido, dni, telefono, activo, rol_id, created_at, updated_at
		FROM perfiles WHERE id = $1`
	var p entity.Perfil
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Nombre, &p.Apellido, &p.DNI,
		&p.Telefono, &p.Activo, &p.RolID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfil: %w", err)
	}
	return &p, nil
}

// GetByEmail obtiene un perfil por email (login).
func (r *PerfilRepo) GetByEmail(email string) (*entity.Perfil, error) {
	query := `
		SELECT id, email, password_hash, nombre, apellido, dni, telefono, activo, rol_id, created_at, updated_at
		FROM perfiles WHERE email = $1`
	var p entity.Perfil
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Nombre, &p.Apellido, &p.DNI,
		&p.Telefono, &p.Activo, &p.RolID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfil by email: %w", err)
	}
	return &p, nil
}

// ExistsByEmail chequeo previo de existencia usado en el registro.
func (r *PerfilRepo) ExistsByEmail(email string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM perfiles WHERE email = $1)`, email,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists perfil by email: %w", err)
	}
	return existe, nil
}

// Update actualiza un perfil existente. No toca password_hash (se maneja aparte).
func (r *PerfilRepo) Update(perfil *entity.Perfil) error {
	query := `
		UPDATE perfiles SET nombre = $2, apellido = $3, dni = $4, telefono = $5, rol_id = $6, password_hash = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		perfil.ID, perfil.Nombre, perfil.Apellido, perfil.DNI, perfil.Telefono,
		perfil.RolID, perfil.PasswordHash, perfil.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update perfil: %w", err)
	}
	return nil
}

// SetActivo desactiva o reactiva el perfil (soft delete).
func (r *PerfilRepo) SetActivo(id string, activo bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE perfiles SET activo = $2, updated_at = now() WHERE id = $1`,
		id, activo,
	)
	if err != nil {
		return fmt.Errorf("set activo perfil: %w", err)
	}
	return nil
}

// List lista todos los perfiles ordenados por fecha de alta.
func (r *PerfilRepo) List() ([]*entity.Perfil, error) {
	query := `
		SELECT id, email, password_hash, nombre, apellido, dni, telefono, activo, rol_id, created_at, updated_at
		FROM perfiles ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list perfiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Perfil
	for rows.Next() {
		var p entity.Perfil
		if err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Nombre, &p.Apellido, &p.DNI,
			&p.Telefono, &p.Activo, &p.RolID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan perfil: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// EmailsPorIDs mapea ids de perfil a email para enriquecer reportes.
func (r *PerfilRepo) EmailsPorIDs(ids []string) (map[string]string, error) {
	emails := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return emails, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, email FROM perfiles WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("emails por ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, email string
		if err := rows.Scan(&id, &email); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		emails[id] = email
	}
	return emails, rows.Err()
}
