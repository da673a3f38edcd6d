// Package pdf genera los reportes descargables del panel admin con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por pedido/turno                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: cantidad de filas                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/autolavado/lavadero-api/internal/application/reporte"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporte.Generator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa reporte.Generator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReportePedidos genera el PDF de pedidos y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReportePedidos(
	_ context.Context,
	filas []reporte.FilaPedido,
	generadoEn time.Time,
) ([]byte, error) {
	m := maroto.New(buildConfig("Reporte de Pedidos"))

	m.AddRows(headerRow("REPORTE DE PEDIDOS", generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(8).Add(
		headerCell("Pedido", 2, align.Left),
		headerCell("Cliente", 3, align.Left),
		headerCell("Email", 3, align.Left),
		headerCell("Total", 2, align.Right),
		headerCell("Pago", 1, align.Center),
		headerCell("Envío", 1, align.Center),
	))
	for _, f := range filas {
		m.AddRows(row.New(7).Add(
			dataCell(abreviarID(f.ID), 2, align.Left),
			dataCell(f.Cliente, 3, align.Left),
			dataCell(f.Email, 3, align.Left),
			dataCell("$"+f.Total, 2, align.Right),
			dataCell(f.EstadoPago, 1, align.Center),
			dataCell(f.EstadoEnvio, 1, align.Center),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(filas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de pedidos: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerarReporteTurnos genera el PDF de turnos y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteTurnos(
	_ context.Context,
	filas []reporte.FilaTurno,
	generadoEn time.Time,
) ([]byte, error) {
	m := maroto.New(buildConfig("Reporte de Turnos"))

	m.AddRows(headerRow("REPORTE DE TURNOS", generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(8).Add(
		headerCell("Turno", 2, align.Left),
		headerCell("Servicio", 4, align.Left),
		headerCell("Fecha", 2, align.Center),
		headerCell("Hora", 2, align.Center),
		headerCell("Estado", 2, align.Center),
	))
	for _, f := range filas {
		m.AddRows(row.New(7).Add(
			dataCell(abreviarID(f.ID), 2, align.Left),
			dataCell(f.Servicio, 4, align.Left),
			dataCell(f.Fecha, 2, align.Center),
			dataCell(f.Hora, 2, align.Center),
			dataCell(f.Estado, 2, align.Center),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(filas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de turnos: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func buildConfig(titulo string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(titulo string, generadoEn time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generadoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func dataCell(valor string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(valor, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Size: 8, Color: colorGray, Top: 2,
		}),
	))
}

// abreviarID recorta un uuid a su primer bloque para que entre en la celda.
func abreviarID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
