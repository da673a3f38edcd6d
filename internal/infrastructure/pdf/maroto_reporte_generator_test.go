package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/reporte"
	"github.com/autolavado/lavadero-api/internal/infrastructure/pdf"
)

func TestGenerarReportePedidos_DevuelvePDF(t *testing.T) {
	gen := pdf.NewMarotoReporteGenerator()
	filas := []reporte.FilaPedido{
		{ID: "a1b2c3d4-0000-0000-0000-000000000001", Cliente: "Ana García", Email: "ana@mail.com",
			Total: "3.801,00", EstadoPago: "Pagado", EstadoEnvio: "Enviado", Fecha: "01/06/2025"},
		{ID: "a1b2c3d4-0000-0000-0000-000000000002", Cliente: "Luis Pérez", Email: "luis@mail.com",
			Total: "800,00", EstadoPago: "Pendiente", EstadoEnvio: "Pendiente", Fecha: "02/06/2025"},
	}

	doc, err := gen.GenerarReportePedidos(context.Background(), filas, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "el documento debe ser un PDF válido")
}

func TestGenerarReporteTurnos_DevuelvePDF(t *testing.T) {
	gen := pdf.NewMarotoReporteGenerator()
	filas := []reporte.FilaTurno{
		{ID: "b1b2c3d4-0000-0000-0000-000000000001", Servicio: "Lavado completo",
			Fecha: "2025-06-01", Hora: "10:00", Estado: "Confirmado"},
	}

	doc, err := gen.GenerarReporteTurnos(context.Background(), filas, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

// Un reporte sin filas sigue siendo un documento válido (header y pie solos).
func TestGenerarReporteTurnos_SinFilas(t *testing.T) {
	gen := pdf.NewMarotoReporteGenerator()

	doc, err := gen.GenerarReporteTurnos(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
