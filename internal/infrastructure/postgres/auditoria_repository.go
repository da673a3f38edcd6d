package postgres

import (
	"context"
	"fmt"

	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación del puerto AuditoriaRepository sobre PostgreSQL.
// La tabla es append-only: no hay update ni delete.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador de persistencia para auditoría. Pasar pool o tx (Querier).
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create inserta un registro de auditoría.
func (r *AuditoriaRepo) Create(registro *entity.Auditoria) error {
	query := `
		INSERT INTO auditoria (id, usuario_id, modulo, accion, detalle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		registro.ID, registro.UsuarioID, registro.Modulo, registro.Accion,
		registro.Detalle, registro.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// List devuelve los últimos registros, el más reciente primero.
func (r *AuditoriaRepo) List(limit int) ([]*entity.Auditoria, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, usuario_id, modulo, accion, detalle, created_at
		FROM auditoria ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.Auditoria
	for rows.Next() {
		var a entity.Auditoria
		if err := rows.Scan(&a.ID, &a.UsuarioID, &a.Modulo, &a.Accion, &a.Detalle, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
