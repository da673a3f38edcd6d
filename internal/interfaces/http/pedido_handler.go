package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/pedido"
	"github.com/autolavado/lavadero-api/internal/domain"
)

// PedidoHandler maneja la compra de la tienda y el panel de pedidos.
type PedidoHandler struct {
	uc *pedido.UseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedido.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear pedido desde el carrito
// @Description  Congela precios y datos del cliente al momento de la compra y
// @Description  descuenta stock. Si alguna escritura falla, las anteriores se
// @Description  compensan: no quedan pedidos huérfanos.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Líneas del carrito"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el carrito debe tener líneas con cantidad positiva"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_STOCK", Message: "stock insuficiente para alguna de las líneas"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado o inactivo"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos (panel admin)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un pedido con sus líneas
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// ActualizarEstados godoc
// @Summary      Editar estados de pago y envío (panel admin)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdatePedidoRequest  true  "Estados nuevos"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [put]
func (h *PedidoHandler) ActualizarEstados(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarEstados(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrEstadoInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "estado de pago o envío desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}
