package entity

import "time"

// Estados del turno. Un turno nunca se elimina, solo transiciona de estado.
const (
	TurnoPendiente  = "Pendiente"
	TurnoConfirmado = "Confirmado"
	TurnoCancelado  = "Cancelado"
	TurnoRealizado  = "Realizado"
)

// Turno es una reserva de un servicio en un slot (fecha, hora).
// Fecha se guarda como fecha calendario (YYYY-MM-DD) y Hora como "HH:MM".
type Turno struct {
	ID            string
	ClienteID     string
	ServicioID    string
	Fecha         string
	Hora          string
	Estado        string
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EstadoTurnoValido indica si el estado pertenece al enumerado.
func EstadoTurnoValido(estado string) bool {
	switch estado {
	case TurnoPendiente, TurnoConfirmado, TurnoCancelado, TurnoRealizado:
		return true
	}
	return false
}

// OcupaSlot indica si el turno bloquea su slot: solo Pendiente y Confirmado
// cuentan para el chequeo de disponibilidad.
func (t *Turno) OcupaSlot() bool {
	return t.Estado == TurnoPendiente || t.Estado == TurnoConfirmado
}
