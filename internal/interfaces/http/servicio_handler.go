package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	"github.com/autolavado/lavadero-api/internal/domain"
)

// ServicioHandler maneja las peticiones HTTP para Servicio.
type ServicioHandler struct {
	uc *usecase.ServicioUseCase
}

// NewServicioHandler construye el handler.
func NewServicioHandler(uc *usecase.ServicioUseCase) *ServicioHandler {
	return &ServicioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServicioRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ServicioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/servicios [post]
func (h *ServicioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre (máx. 100) y precio deben ser válidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio por ID
// @Tags         servicios
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServicioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/servicios/{id} [get]
func (h *ServicioHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// ListPublico godoc
// @Summary      Vitrina pública de servicios (solo visibles)
// @Tags         servicios
// @Produce      json
// @Param        buscar  query  string  false  "Filtro por nombre"
// @Success      200     {array}  dto.ServicioResponse
// @Router       /api/servicios/publicos [get]
func (h *ServicioHandler) ListPublico(c *fiber.Ctx) error {
	out, err := h.uc.List(true, c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar servicios (panel admin, incluye no visibles)
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        buscar  query  string  false  "Filtro por nombre"
// @Success      200     {array}  dto.ServicioResponse
// @Router       /api/servicios [get]
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(false, c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.UpdateServicioRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ServicioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/servicios/{id} [put]
func (h *ServicioHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar servicio (soft delete)
// @Tags         servicios
// @Security     Bearer
// @Param        id  path  string  true  "ID del servicio"
// @Success      204
// @Router       /api/servicios/{id} [delete]
func (h *ServicioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
