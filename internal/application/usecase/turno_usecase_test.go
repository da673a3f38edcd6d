package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

type fakeTurnos struct {
	repository.TurnoRepository
	ocupados map[string]bool
	errCheck error
	creados  []*entity.Turno
}

func (f *fakeTurnos) ExisteConflicto(fecha, hora string) (bool, error) {
	if f.errCheck != nil {
		return false, f.errCheck
	}
	return f.ocupados[fecha+" "+hora], nil
}

func (f *fakeTurnos) Create(t *entity.Turno) error {
	f.creados = append(f.creados, t)
	return nil
}

type fakeServicios struct {
	repository.ServicioRepository
	porID map[string]*entity.Servicio
}

func (f *fakeServicios) GetByID(id string) (*entity.Servicio, error) {
	return f.porID[id], nil
}

// Reloj fijo: 1 de mayo de 2025, 12:00 local.
func relojFijo() time.Time {
	return time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
}

func armarTurnos(policy usecase.DisponibilidadPolicy) (*usecase.TurnoUseCase, *fakeTurnos) {
	turnos := &fakeTurnos{ocupados: map[string]bool{
		// turno Confirmado existente en ese slot
		"2025-06-01 10:00": true,
	}}
	servicios := &fakeServicios{porID: map[string]*entity.Servicio{
		"s1": {ID: "s1", Nombre: "Lavado completo", Activo: true},
	}}
	uc := usecase.NewTurnoUseCase(turnos, servicios, usecase.NewAuditor(nil), policy).
		WithClock(relojFijo)
	return uc, turnos
}

func TestCrearTurno_SlotOcupadoRechaza(t *testing.T) {
	uc, turnos := armarTurnos(usecase.DisponibilidadPolicy{})

	_, err := uc.Crear("c1", dto.CreateTurnoRequest{
		ServicioID: "s1", Fecha: "2025-06-01", Hora: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrTurnoOcupado)
	assert.Empty(t, turnos.creados)
}

func TestCrearTurno_SlotLibreAcepta(t *testing.T) {
	uc, turnos := armarTurnos(usecase.DisponibilidadPolicy{})

	out, err := uc.Crear("c1", dto.CreateTurnoRequest{
		ServicioID: "s1", Fecha: "2025-06-01", Hora: "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TurnoPendiente, out.Estado)
	require.Len(t, turnos.creados, 1)
	assert.Equal(t, "2025-06-01", turnos.creados[0].Fecha)
	assert.Equal(t, "11:00", turnos.creados[0].Hora)
}

// Una fecha/hora anterior al reloj se rechaza siempre, sin importar conflictos.
func TestCrearTurno_PasadoRechazaSiempre(t *testing.T) {
	uc, turnos := armarTurnos(usecase.DisponibilidadPolicy{})

	for _, caso := range []dto.CreateTurnoRequest{
		{ServicioID: "s1", Fecha: "2025-04-30", Hora: "10:00"},
		{ServicioID: "s1", Fecha: "2025-05-01", Hora: "12:00"}, // igual a "ahora", no estrictamente futuro
	} {
		_, err := uc.Crear("c1", caso)
		assert.ErrorIs(t, err, domain.ErrTurnoPasado, "%s %s", caso.Fecha, caso.Hora)
	}
	assert.Empty(t, turnos.creados)
}

func TestCrearTurno_FormatoInvalido(t *testing.T) {
	uc, _ := armarTurnos(usecase.DisponibilidadPolicy{})

	_, err := uc.Crear("c1", dto.CreateTurnoRequest{ServicioID: "s1", Fecha: "01/06/2025", Hora: "10:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Política fail-open por defecto: si la consulta de conflicto falla, la
// reserva sigue adelante asumiendo el slot libre.
func TestCrearTurno_ErrorDeChequeo_FailOpen(t *testing.T) {
	uc, turnos := armarTurnos(usecase.DisponibilidadPolicy{OnCheckError: usecase.OnCheckErrorAllow})
	turnos.errCheck = errors.New("backend caído")

	_, err := uc.Crear("c1", dto.CreateTurnoRequest{
		ServicioID: "s1", Fecha: "2025-06-01", Hora: "10:00",
	})
	require.NoError(t, err)
	assert.Len(t, turnos.creados, 1)
}

func TestCrearTurno_ErrorDeChequeo_FailClosed(t *testing.T) {
	uc, turnos := armarTurnos(usecase.DisponibilidadPolicy{OnCheckError: usecase.OnCheckErrorDeny})
	turnos.errCheck = errors.New("backend caído")

	_, err := uc.Crear("c1", dto.CreateTurnoRequest{
		ServicioID: "s1", Fecha: "2025-06-01", Hora: "10:00",
	})
	require.Error(t, err)
	assert.Empty(t, turnos.creados)
}

func TestCrearTurno_ServicioInexistente(t *testing.T) {
	uc, _ := armarTurnos(usecase.DisponibilidadPolicy{})

	_, err := uc.Crear("c1", dto.CreateTurnoRequest{
		ServicioID: "no-existe", Fecha: "2025-06-01", Hora: "11:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
