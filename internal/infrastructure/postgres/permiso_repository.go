package postgres

import (
	"context"
	"fmt"

	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

var _ repository.PermisoRepository = (*PermisoRepo)(nil)

// PermisoRepo implementación del puerto PermisoRepository sobre PostgreSQL.
// El catálogo de permisos se siembra por migración: acá solo se lee y se
// administra el vínculo rol↔permiso.
type PermisoRepo struct {
	q Querier
}

// NewPermisoRepository construye el adaptador de persistencia para permisos. Pasar pool o tx (Querier).
func NewPermisoRepository(q Querier) *PermisoRepo {
	return &PermisoRepo{q: q}
}

// List devuelve el catálogo completo de permisos ordenado por módulo y código.
func (r *PermisoRepo) List() ([]*entity.Permiso, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, modulo
		FROM permisos ORDER BY modulo, codigo`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list permisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Modulo); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListByRol devuelve los permisos asignados a un rol.
func (r *PermisoRepo) ListByRol(rolID string) ([]*entity.Permiso, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, p.descripcion, p.modulo
		FROM permisos p
		JOIN rol_permisos rp ON rp.permiso_id = p.id
		WHERE rp.rol_id = $1
		ORDER BY p.modulo, p.codigo`
	rows, err := r.q.Query(context.Background(), query, rolID)
	if err != nil {
		return nil, fmt.Errorf("list permisos by rol: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Modulo); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CodigosByPerfil devuelve la lista aplanada de códigos de permiso del rol del
// perfil, en una sola consulta (perfil → rol → rol_permisos → permisos).
func (r *PermisoRepo) CodigosByPerfil(perfilID string) ([]string, error) {
	query := `
		SELECT p.codigo
		FROM perfiles pf
		JOIN rol_permisos rp ON rp.rol_id = pf.rol_id
		JOIN permisos p ON p.id = rp.permiso_id
		WHERE pf.id = $1
		ORDER BY p.codigo`
	rows, err := r.q.Query(context.Background(), query, perfilID)
	if err != nil {
		return nil, fmt.Errorf("codigos by perfil: %w", err)
	}
	defer rows.Close()
	var codigos []string
	for rows.Next() {
		var codigo string
		if err := rows.Scan(&codigo); err != nil {
			return nil, fmt.Errorf("scan codigo: %w", err)
		}
		codigos = append(codigos, codigo)
	}
	return codigos, rows.Err()
}

// Asignar vincula un permiso a un rol. Asignar dos veces es un conflicto.
func (r *PermisoRepo) Asignar(rolID, permisoID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO rol_permisos (rol_id, permiso_id, created_at) VALUES ($1, $2, now())`,
		rolID, permisoID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("asignar permiso: %w", err)
	}
	return nil
}

// Revocar desvincula un permiso de un rol. Revocar algo no asignado es no-op.
func (r *PermisoRepo) Revocar(rolID, permisoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM rol_permisos WHERE rol_id = $1 AND permiso_id = $2`,
		rolID, permisoID,
	)
	if err != nil {
		return fmt.Errorf("revocar permiso: %w", err)
	}
	return nil
}
