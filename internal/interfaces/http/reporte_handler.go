package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/reporte"
)

// ReporteHandler expone los exports PDF del panel admin.
type ReporteHandler struct {
	uc *reporte.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reporte.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Pedidos godoc
// @Summary      Descargar reporte PDF de pedidos
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/reportes/pedidos [get]
func (h *ReporteHandler) Pedidos(c *fiber.Ctx) error {
	nombre, pdf, err := h.uc.ReportePedidos(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdf)
}

// Turnos godoc
// @Summary      Descargar reporte PDF de turnos
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/reportes/turnos [get]
func (h *ReporteHandler) Turnos(c *fiber.Ctx) error {
	nombre, pdf, err := h.uc.ReporteTurnos(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdf)
}
