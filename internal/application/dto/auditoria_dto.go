package dto

import (
	"encoding/json"
	"time"
)

// AuditoriaResponse un registro del log de auditoría.
type AuditoriaResponse struct {
	ID        string          `json:"id"`
	UsuarioID string          `json:"usuario_id"`
	Modulo    string          `json:"modulo"`
	Accion    string          `json:"accion"`
	Detalle   json.RawMessage `json:"detalle,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
