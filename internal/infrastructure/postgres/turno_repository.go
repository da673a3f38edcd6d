package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

var _ repository.TurnoRepository = (*TurnoRepo)(nil)

// TurnoRepo implementación del puerto TurnoRepository sobre PostgreSQL (usable con pool o tx).
type TurnoRepo struct {
	q Querier
}

// NewTurnoRepository construye el adaptador de persistencia para turnos. Pasar pool o tx (Querier).
func NewTurnoRepository(q Querier) *TurnoRepo {
	return &TurnoRepo{q: q}
}

// Create persiste un nuevo turno.
func (r *TurnoRepo) Create(turno *entity.Turno) error {
	query := `
		INSERT INTO turnos (id, cliente_id, servicio_id, fecha, hora, estado, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		turno.ID, turno.ClienteID, turno.ServicioID, turno.Fecha, turno.Hora,
		turno.Estado, turno.Observaciones, turno.CreatedAt, turno.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert turno: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *TurnoRepo) GetByID(id string) (*entity.Turno, error) {
	query := `
		SELECT id, cliente_id, servicio_id, fecha, hora, estado, observaciones, created_at, updated_at
		FROM turnos WHERE id = $1`
	var t entity.Turno
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ClienteID, &t.ServicioID, &t.Fecha, &t.Hora,
		&t.Estado, &t.Observaciones, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get turno: %w", err)
	}
	return &t, nil
}

// Update actualiza estado, slot y observaciones. El servicio no cambia:
// mover un turno a otro servicio es cancelar y crear uno nuevo.
func (r *TurnoRepo) Update(turno *entity.Turno) error {
	query := `
		UPDATE turnos SET fecha = $2, hora = $3, estado = $4, observaciones = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		turno.ID, turno.Fecha, turno.Hora, turno.Estado, turno.Observaciones, turno.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update turno: %w", err)
	}
	return nil
}

// List lista todos los turnos ordenados por slot.
func (r *TurnoRepo) List() ([]*entity.Turno, error) {
	query := `
		SELECT id, cliente_id, servicio_id, fecha, hora, estado, observaciones, created_at, updated_at
		FROM turnos ORDER BY fecha, hora`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list turnos: %w", err)
	}
	defer rows.Close()
	return scanTurnos(rows)
}

// ListByCliente lista los turnos de un cliente ("mis turnos").
func (r *TurnoRepo) ListByCliente(clienteID string) ([]*entity.Turno, error) {
	query := `
		SELECT id, cliente_id, servicio_id, fecha, hora, estado, observaciones, created_at, updated_at
		FROM turnos WHERE cliente_id = $1 ORDER BY fecha DESC, hora DESC`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list turnos by cliente: %w", err)
	}
	defer rows.Close()
	return scanTurnos(rows)
}

// ExisteConflicto consulta si hay un turno Pendiente o Confirmado en el slot.
// Cancelados y Realizados liberan el slot.
func (r *TurnoRepo) ExisteConflicto(fecha, hora string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(
			SELECT 1 FROM turnos
			WHERE fecha = $1 AND hora = $2 AND estado IN ($3, $4)
		)`,
		fecha, hora, entity.TurnoPendiente, entity.TurnoConfirmado,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe conflicto turno: %w", err)
	}
	return existe, nil
}

func scanTurnos(rows pgx.Rows) ([]*entity.Turno, error) {
	var list []*entity.Turno
	for rows.Next() {
		var t entity.Turno
		if err := rows.Scan(&t.ID, &t.ClienteID, &t.ServicioID, &t.Fecha, &t.Hora,
			&t.Estado, &t.Observaciones, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan turno: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
