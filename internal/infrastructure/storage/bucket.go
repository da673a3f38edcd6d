// Package storage sube imágenes al bucket del proveedor vía su API REST.
// Las imágenes de productos y servicios se guardan bajo carpetas separadas y
// se sirven por URL pública, sin pasar por esta API.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/pkg/config"
)

const defaultTimeout = 10 * time.Second

// Carpetas del bucket por tipo de recurso.
const (
	CarpetaProductos = "productos"
	CarpetaServicios = "servicios"
)

// BucketClient cliente del bucket de imágenes (API compatible con el storage
// del backend hosteado: POST {base}/object/{bucket}/{path} con bearer).
type BucketClient struct {
	http       *http.Client
	baseURL    string
	bucket     string
	serviceKey string
	maxBytes   int64
}

// NewBucketClient construye el cliente desde la configuración.
func NewBucketClient(cfg config.StorageConfig) *BucketClient {
	return &BucketClient{
		http:       &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		bucket:     cfg.Bucket,
		serviceKey: cfg.ServiceKey,
		maxBytes:   cfg.MaxUploadBytes,
	}
}

// NewBucketClientWithTransport permite inyectar un Transport (p.ej. para tests).
func NewBucketClientWithTransport(cfg config.StorageConfig, tr http.RoundTripper) *BucketClient {
	c := NewBucketClient(cfg)
	c.http.Transport = tr
	return c
}

// Subir valida y sube una imagen a la carpeta indicada. El nombre en el bucket
// se genera con un uuid como prefijo para evitar colisiones. Devuelve la URL
// pública del objeto.
func (c *BucketClient) Subir(ctx context.Context, carpeta, nombre, contentType string, data []byte) (string, error) {
	if carpeta != CarpetaProductos && carpeta != CarpetaServicios {
		return "", fmt.Errorf("%w: carpeta desconocida %q", domain.ErrInvalidInput, carpeta)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: solo se aceptan imágenes, recibido %q", domain.ErrInvalidInput, contentType)
	}
	if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
		return "", fmt.Errorf("%w: la imagen supera el tamaño máximo (%d bytes)", domain.ErrInvalidInput, c.maxBytes)
	}

	ruta := fmt.Sprintf("%s/%s-%s", carpeta, uuid.New().String(), sanearNombre(nombre))
	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, ruta)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: subir imagen: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return "", fmt.Errorf("storage: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return c.URLPublica(ruta), nil
}

// URLPublica devuelve la URL pública de un objeto del bucket.
func (c *BucketClient) URLPublica(ruta string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, ruta)
}

// sanearNombre deja el nombre apto para una ruta de objeto: minúsculas, sin
// espacios ni separadores de ruta.
func sanearNombre(nombre string) string {
	nombre = strings.ToLower(strings.TrimSpace(nombre))
	reemplazos := strings.NewReplacer(" ", "-", "/", "-", "\\", "-")
	nombre = reemplazos.Replace(nombre)
	if nombre == "" {
		return "imagen"
	}
	return nombre
}
