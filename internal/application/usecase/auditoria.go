package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

// Auditor registra mutaciones administrativas en la tabla auditoria.
// Es best effort: un fallo al auditar se loguea y no aborta la operación.
type Auditor struct {
	repo repository.AuditoriaRepository
}

// NewAuditor construye el auditor. Acepta repo nil (auditoría apagada).
func NewAuditor(repo repository.AuditoriaRepository) *Auditor {
	return &Auditor{repo: repo}
}

// Registrar guarda el evento. Detalle se serializa a JSON.
func (a *Auditor) Registrar(usuarioID, modulo, accion string, detalle any) {
	if a == nil || a.repo == nil {
		return
	}
	raw, err := json.Marshal(detalle)
	if err != nil {
		raw = nil
	}
	reg := &entity.Auditoria{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		Modulo:    modulo,
		Accion:    accion,
		Detalle:   raw,
		CreatedAt: time.Now(),
	}
	if err := a.repo.Create(reg); err != nil {
		log.Warn().Err(err).Str("modulo", modulo).Str("accion", accion).Msg("auditoría no registrada")
	}
}

// List devuelve los últimos registros de auditoría.
func (a *Auditor) List(limit int) ([]*entity.Auditoria, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return a.repo.List(limit)
}
