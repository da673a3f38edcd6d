package dto

import "time"

// CreateTurnoRequest reserva de un slot por parte del cliente.
// Fecha en formato "2006-01-02" y Hora en "15:04".
type CreateTurnoRequest struct {
	ServicioID    string `json:"servicio_id"`
	Fecha         string `json:"fecha"`
	Hora          string `json:"hora"`
	Observaciones string `json:"observaciones"`
}

// UpdateTurnoRequest edición admin de estado/fecha/hora. Campos nil no se tocan.
type UpdateTurnoRequest struct {
	Estado *string `json:"estado"`
	Fecha  *string `json:"fecha"`
	Hora   *string `json:"hora"`
}

// TurnoResponse representación de un turno.
type TurnoResponse struct {
	ID            string    `json:"id"`
	ClienteID     string    `json:"cliente_id"`
	ServicioID    string    `json:"servicio_id"`
	Fecha         string    `json:"fecha"`
	Hora          string    `json:"hora"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
