package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

// Política del chequeo de disponibilidad ante un error de la consulta de
// conflicto: fail-open (allow, comportamiento documentado) o fail-closed.
const (
	OnCheckErrorAllow = "allow"
	OnCheckErrorDeny  = "deny"
)

// DisponibilidadPolicy hace explícita la decisión fail-open/fail-closed.
type DisponibilidadPolicy struct {
	OnCheckError string
}

// TurnoUseCase reserva de turnos y edición admin.
//
// El chequeo de disponibilidad es leer-y-decidir sin lock: entre la consulta y
// el insert otra reserva puede ganar el slot. La ventana de carrera es
// comportamiento aceptado del negocio.
type TurnoUseCase struct {
	turnos    repository.TurnoRepository
	servicios repository.ServicioRepository
	auditor   *Auditor
	policy    DisponibilidadPolicy

	// ahora se inyecta en tests; por defecto time.Now.
	ahora func() time.Time
}

// NewTurnoUseCase construye el caso de uso.
func NewTurnoUseCase(turnos repository.TurnoRepository, servicios repository.ServicioRepository, auditor *Auditor, policy DisponibilidadPolicy) *TurnoUseCase {
	if policy.OnCheckError != OnCheckErrorDeny {
		policy.OnCheckError = OnCheckErrorAllow
	}
	return &TurnoUseCase{
		turnos:    turnos,
		servicios: servicios,
		auditor:   auditor,
		policy:    policy,
		ahora:     time.Now,
	}
}

// WithClock reemplaza el reloj (solo tests).
func (uc *TurnoUseCase) WithClock(ahora func() time.Time) *TurnoUseCase {
	uc.ahora = ahora
	return uc
}

// Crear reserva un slot para el cliente: valida formato y futuro estricto,
// chequea el conflicto y persiste el turno en Pendiente.
func (uc *TurnoUseCase) Crear(clienteID string, in dto.CreateTurnoRequest) (*dto.TurnoResponse, error) {
	if in.ServicioID == "" {
		return nil, domain.ErrInvalidInput
	}
	cuando, err := parseSlot(in.Fecha, in.Hora)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !cuando.After(uc.ahora()) {
		return nil, domain.ErrTurnoPasado
	}
	servicio, err := uc.servicios.GetByID(in.ServicioID)
	if err != nil {
		return nil, err
	}
	if servicio == nil || !servicio.Activo {
		return nil, domain.ErrNotFound
	}

	ocupado, err := uc.turnos.ExisteConflicto(in.Fecha, in.Hora)
	if err != nil {
		if uc.policy.OnCheckError == OnCheckErrorDeny {
			return nil, fmt.Errorf("chequeo de disponibilidad: %w", err)
		}
		// Fail-open: un fallo del chequeo no bloquea la reserva
		log.Warn().Err(err).Str("fecha", in.Fecha).Str("hora", in.Hora).
			Msg("chequeo de disponibilidad falló, se asume slot libre")
		ocupado = false
	}
	if ocupado {
		return nil, domain.ErrTurnoOcupado
	}

	now := uc.ahora()
	turno := &entity.Turno{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		ServicioID:    in.ServicioID,
		Fecha:         in.Fecha,
		Hora:          in.Hora,
		Estado:        entity.TurnoPendiente,
		Observaciones: in.Observaciones,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.turnos.Create(turno); err != nil {
		return nil, err
	}
	return toTurnoResponse(turno), nil
}

// GetByID obtiene un turno.
func (uc *TurnoUseCase) GetByID(id string) (*dto.TurnoResponse, error) {
	turno, err := uc.turnos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if turno == nil {
		return nil, nil
	}
	return toTurnoResponse(turno), nil
}

// List todos los turnos (panel admin).
func (uc *TurnoUseCase) List() ([]dto.TurnoResponse, error) {
	lista, err := uc.turnos.List()
	if err != nil {
		return nil, err
	}
	return toTurnoResponses(lista), nil
}

// ListByCliente turnos del cliente autenticado.
func (uc *TurnoUseCase) ListByCliente(clienteID string) ([]dto.TurnoResponse, error) {
	lista, err := uc.turnos.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	return toTurnoResponses(lista), nil
}

// Update edición admin de estado/fecha/hora. Un turno nunca se elimina.
func (uc *TurnoUseCase) Update(usuarioID, id string, in dto.UpdateTurnoRequest) (*dto.TurnoResponse, error) {
	turno, err := uc.turnos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if turno == nil {
		return nil, nil
	}
	if in.Estado != nil {
		if !entity.EstadoTurnoValido(*in.Estado) {
			return nil, domain.ErrEstadoInvalido
		}
		turno.Estado = *in.Estado
	}
	fecha, hora := turno.Fecha, turno.Hora
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	if in.Hora != nil {
		hora = *in.Hora
	}
	if fecha != turno.Fecha || hora != turno.Hora {
		if _, err := parseSlot(fecha, hora); err != nil {
			return nil, domain.ErrInvalidInput
		}
		turno.Fecha, turno.Hora = fecha, hora
	}
	turno.UpdatedAt = uc.ahora()
	if err := uc.turnos.Update(turno); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "turnos", "editar", map[string]string{"id": id, "estado": turno.Estado})
	return toTurnoResponse(turno), nil
}

// parseSlot combina fecha ("2006-01-02") y hora ("15:04") en hora local.
func parseSlot(fecha, hora string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", fecha+" "+hora, time.Local)
}

func toTurnoResponse(t *entity.Turno) *dto.TurnoResponse {
	if t == nil {
		return nil
	}
	return &dto.TurnoResponse{
		ID:            t.ID,
		ClienteID:     t.ClienteID,
		ServicioID:    t.ServicioID,
		Fecha:         t.Fecha,
		Hora:          t.Hora,
		Estado:        t.Estado,
		Observaciones: t.Observaciones,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTurnoResponses(lista []*entity.Turno) []dto.TurnoResponse {
	items := make([]dto.TurnoResponse, 0, len(lista))
	for _, t := range lista {
		items = append(items, *toTurnoResponse(t))
	}
	return items
}
