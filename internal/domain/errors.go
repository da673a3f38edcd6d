package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrTurnoOcupado: el horario solicitado ya tiene un turno pendiente o confirmado.
	ErrTurnoOcupado = errors.New("el horario seleccionado ya está ocupado")
	// ErrTurnoPasado: la fecha/hora del turno no es estrictamente futura.
	ErrTurnoPasado = errors.New("la fecha y hora del turno deben ser futuras")
	// ErrRolSistema: los roles de sistema no pueden eliminarse.
	ErrRolSistema = errors.New("los roles de sistema no pueden eliminarse")
	// ErrEstadoInvalido: el estado indicado no pertenece al enumerado de la entidad.
	ErrEstadoInvalido = errors.New("estado inválido")
)
