package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
)

// AuditoriaHandler lectura del registro de auditoría (solo consulta).
type AuditoriaHandler struct {
	auditor *usecase.Auditor
}

// NewAuditoriaHandler construye el handler.
func NewAuditoriaHandler(auditor *usecase.Auditor) *AuditoriaHandler {
	return &AuditoriaHandler{auditor: auditor}
}

// List godoc
// @Summary      Últimos registros de auditoría
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad máxima"  default(100)
// @Success      200    {array}  dto.AuditoriaResponse
// @Router       /api/auditoria [get]
func (h *AuditoriaHandler) List(c *fiber.Ctx) error {
	lista, err := h.auditor.List(c.QueryInt("limit", 100))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.AuditoriaResponse, 0, len(lista))
	for _, a := range lista {
		items = append(items, dto.AuditoriaResponse{
			ID:        a.ID,
			UsuarioID: a.UsuarioID,
			Modulo:    a.Modulo,
			Accion:    a.Accion,
			Detalle:   a.Detalle,
			CreatedAt: a.CreatedAt,
		})
	}
	return c.JSON(items)
}
