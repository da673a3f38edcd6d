package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/infrastructure/storage"
)

// ImagenHandler sube imágenes de productos y servicios al bucket.
type ImagenHandler struct {
	bucket *storage.BucketClient
}

// NewImagenHandler construye el handler.
func NewImagenHandler(bucket *storage.BucketClient) *ImagenHandler {
	return &ImagenHandler{bucket: bucket}
}

// Subir godoc
// @Summary      Subir imagen al bucket
// @Description  Multipart con campo "imagen". Solo content-type image/* y
// @Description  hasta el tamaño máximo configurado. Devuelve la URL pública
// @Description  para guardar en el producto o servicio.
// @Tags         imagenes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        carpeta  path      string  true  "productos o servicios"
// @Param        imagen   formData  file    true  "Archivo de imagen"
// @Success      201      {object}  map[string]string
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/imagenes/{carpeta} [post]
func (h *ImagenHandler) Subir(c *fiber.Ctx) error {
	carpeta := c.Params("carpeta")
	fh, err := c.FormFile("imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'imagen' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	url, err := h.bucket.Subir(c.Context(), carpeta, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STORAGE_FAILED", Message: "no se pudo subir la imagen"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
