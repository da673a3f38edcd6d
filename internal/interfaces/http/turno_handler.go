package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	"github.com/autolavado/lavadero-api/internal/domain"
)

// TurnoHandler maneja la reserva de turnos del cliente y la agenda admin.
type TurnoHandler struct {
	uc *usecase.TurnoUseCase
}

// NewTurnoHandler construye el handler.
func NewTurnoHandler(uc *usecase.TurnoUseCase) *TurnoHandler {
	return &TurnoHandler{uc: uc}
}

// Crear godoc
// @Summary      Reservar un turno
// @Tags         turnos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTurnoRequest  true  "Slot y servicio"
// @Success      201   {object}  dto.TurnoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/turnos [post]
func (h *TurnoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateTurnoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha (AAAA-MM-DD), hora (HH:MM) y servicio son requeridos"})
		case errors.Is(err, domain.ErrTurnoPasado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TURNO_PASADO", Message: "el turno debe ser a futuro"})
		case errors.Is(err, domain.ErrTurnoOcupado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TURNO_OCUPADO", Message: "el horario ya está reservado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MisTurnos godoc
// @Summary      Turnos del usuario autenticado
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TurnoResponse
// @Router       /api/turnos/mis [get]
func (h *TurnoHandler) MisTurnos(c *fiber.Ctx) error {
	out, err := h.uc.ListByCliente(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Agenda completa de turnos (panel admin)
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TurnoResponse
// @Router       /api/turnos [get]
func (h *TurnoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener turno por ID
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del turno"
// @Success      200  {object}  dto.TurnoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [get]
func (h *TurnoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar turno (estado, fecha u hora; nunca se elimina)
// @Tags         turnos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del turno"
// @Param        body  body  dto.UpdateTurnoRequest  true  "Cambios"
// @Success      200   {object}  dto.TurnoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [put]
func (h *TurnoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTurnoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEstadoInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "estado de turno desconocido"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha u hora inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno no encontrado"})
	}
	return c.JSON(out)
}
