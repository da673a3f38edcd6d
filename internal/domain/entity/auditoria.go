package entity

import (
	"encoding/json"
	"time"
)

// Auditoria registra una mutación administrativa: quién, sobre qué módulo y
// con qué detalle. Solo se inserta y consulta, nunca se edita.
type Auditoria struct {
	ID        string
	UsuarioID string
	Modulo    string
	Accion    string
	Detalle   json.RawMessage
	CreatedAt time.Time
}
