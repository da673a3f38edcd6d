package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	"github.com/autolavado/lavadero-api/internal/domain"
)

// PerfilHandler maneja el panel de usuarios y el autoservicio del perfil propio.
type PerfilHandler struct {
	uc *usecase.PerfilUseCase
}

// NewPerfilHandler construye el handler.
func NewPerfilHandler(uc *usecase.PerfilUseCase) *PerfilHandler {
	return &PerfilHandler{uc: uc}
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         perfiles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PerfilResponse
// @Router       /api/perfiles/me [get]
func (h *PerfilHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Editar el perfil propio (sin cambio de rol)
// @Tags         perfiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePerfilRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PerfilResponse
// @Router       /api/perfiles/me [put]
func (h *PerfilHandler) UpdateMe(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.UpdatePerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(userID, userID, in, false)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol solo lo cambia un administrador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar perfiles (panel admin)
// @Tags         perfiles
// @Security     Bearer
// @Produce      json
// @Param        buscar  query  string  false  "Filtro por nombre o email"
// @Success      200     {array}  dto.PerfilResponse
// @Router       /api/perfiles [get]
func (h *PerfilHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener perfil por ID (panel admin)
// @Tags         perfiles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.PerfilResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/perfiles/{id} [get]
func (h *PerfilHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar perfil (panel admin, incluye cambio de rol)
// @Tags         perfiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del perfil"
// @Param        body  body  dto.UpdatePerfilRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PerfilResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/perfiles/{id} [put]
func (h *PerfilHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in, true)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el rol indicado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// Desactivar godoc
// @Summary      Desactivar perfil (soft delete)
// @Tags         perfiles
// @Security     Bearer
// @Param        id  path  string  true  "ID del perfil"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/perfiles/{id} [delete]
func (h *PerfilHandler) Desactivar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Desactivar(GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
