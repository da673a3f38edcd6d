package storage_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/infrastructure/storage"
	"github.com/autolavado/lavadero-api/pkg/config"
)

type transportFake struct {
	ultimaReq *http.Request
	status    int
}

func (t *transportFake) RoundTrip(req *http.Request) (*http.Response, error) {
	t.ultimaReq = req
	status := t.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("{}")),
		Header:     make(http.Header),
	}, nil
}

func armarCliente(tr http.RoundTripper) *storage.BucketClient {
	return storage.NewBucketClientWithTransport(config.StorageConfig{
		BaseURL:        "https://storage.ejemplo.com/storage/v1",
		Bucket:         "imagenes",
		ServiceKey:     "clave-secreta",
		MaxUploadBytes: 1024,
	}, tr)
}

func TestSubir_ArmaRequestYDevuelveURLPublica(t *testing.T) {
	tr := &transportFake{}
	c := armarCliente(tr)

	url, err := c.Subir(context.Background(), storage.CarpetaProductos, "Cera Premium.png", "image/png", []byte("png"))
	require.NoError(t, err)

	require.NotNil(t, tr.ultimaReq)
	assert.Equal(t, http.MethodPost, tr.ultimaReq.Method)
	assert.Equal(t, "Bearer clave-secreta", tr.ultimaReq.Header.Get("Authorization"))
	assert.Equal(t, "image/png", tr.ultimaReq.Header.Get("Content-Type"))
	assert.Contains(t, tr.ultimaReq.URL.Path, "/object/imagenes/productos/")
	assert.Contains(t, url, "/object/public/imagenes/productos/")
	assert.Contains(t, url, "cera-premium.png", "el nombre debe sanearse")
}

func TestSubir_RechazaContentTypeNoImagen(t *testing.T) {
	c := armarCliente(&transportFake{})

	_, err := c.Subir(context.Background(), storage.CarpetaProductos, "doc.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubir_RechazaArchivoGrande(t *testing.T) {
	c := armarCliente(&transportFake{})

	_, err := c.Subir(context.Background(), storage.CarpetaServicios, "foto.jpg", "image/jpeg", make([]byte, 2048))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubir_RechazaCarpetaDesconocida(t *testing.T) {
	c := armarCliente(&transportFake{})

	_, err := c.Subir(context.Background(), "otros", "foto.jpg", "image/jpeg", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubir_ErrorDelBackend(t *testing.T) {
	c := armarCliente(&transportFake{status: http.StatusForbidden})

	_, err := c.Subir(context.Background(), storage.CarpetaProductos, "foto.jpg", "image/jpeg", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=403")
}
