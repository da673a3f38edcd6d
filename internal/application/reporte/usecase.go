// Package reporte arma los exports del panel admin: las filas se materializan
// en memoria desde los repositorios y se escriben en un documento descargable
// con nombre timestampeado, sin viaje extra al backend.
package reporte

import (
	"context"
	"fmt"
	"time"

	"github.com/autolavado/lavadero-api/internal/domain/repository"
	"github.com/autolavado/lavadero-api/pkg/money"
)

// FilaPedido una fila del reporte de pedidos, ya enriquecida con el email.
type FilaPedido struct {
	ID          string
	Cliente     string
	Email       string
	Total       string
	EstadoPago  string
	EstadoEnvio string
	Fecha       string
}

// FilaTurno una fila del reporte de turnos.
type FilaTurno struct {
	ID       string
	Servicio string
	Fecha    string
	Hora     string
	Estado   string
}

// Generator escribe las filas en un documento binario (PDF vía Maroto).
type Generator interface {
	GenerarReportePedidos(ctx context.Context, filas []FilaPedido, generadoEn time.Time) ([]byte, error)
	GenerarReporteTurnos(ctx context.Context, filas []FilaTurno, generadoEn time.Time) ([]byte, error)
}

// UseCase genera los reportes del back office.
type UseCase struct {
	pedidos   repository.PedidoRepository
	turnos    repository.TurnoRepository
	servicios repository.ServicioRepository
	perfiles  repository.PerfilRepository
	gen       Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	pedidos repository.PedidoRepository,
	turnos repository.TurnoRepository,
	servicios repository.ServicioRepository,
	perfiles repository.PerfilRepository,
	gen Generator,
) *UseCase {
	return &UseCase{pedidos: pedidos, turnos: turnos, servicios: servicios, perfiles: perfiles, gen: gen}
}

// ReportePedidos materializa todos los pedidos, mapea ids de cliente a email
// y genera el PDF. Devuelve el nombre de archivo timestampeado y los bytes.
func (uc *UseCase) ReportePedidos(ctx context.Context) (string, []byte, error) {
	lista, err := uc.pedidos.List()
	if err != nil {
		return "", nil, err
	}
	ids := make([]string, 0, len(lista))
	for _, p := range lista {
		ids = append(ids, p.ClienteID)
	}
	emails, err := uc.perfiles.EmailsPorIDs(ids)
	if err != nil {
		// El enriquecimiento es secundario: sin emails el reporte sale igual
		emails = map[string]string{}
	}
	filas := make([]FilaPedido, 0, len(lista))
	for _, p := range lista {
		email := p.ClienteEmail
		if e, ok := emails[p.ClienteID]; ok && e != "" {
			email = e
		}
		filas = append(filas, FilaPedido{
			ID:          p.ID,
			Cliente:     p.ClienteNombre,
			Email:       email,
			Total:       money.Format(p.Total),
			EstadoPago:  p.EstadoPago,
			EstadoEnvio: p.EstadoEnvio,
			Fecha:       p.CreatedAt.Format("02/01/2006"),
		})
	}
	ahora := time.Now()
	pdf, err := uc.gen.GenerarReportePedidos(ctx, filas, ahora)
	if err != nil {
		return "", nil, err
	}
	return nombreArchivo("pedidos", ahora), pdf, nil
}

// ReporteTurnos materializa todos los turnos con el nombre del servicio.
func (uc *UseCase) ReporteTurnos(ctx context.Context) (string, []byte, error) {
	lista, err := uc.turnos.List()
	if err != nil {
		return "", nil, err
	}
	nombres := make(map[string]string)
	filas := make([]FilaTurno, 0, len(lista))
	for _, t := range lista {
		nombre, ok := nombres[t.ServicioID]
		if !ok {
			if s, err := uc.servicios.GetByID(t.ServicioID); err == nil && s != nil {
				nombre = s.Nombre
			}
			nombres[t.ServicioID] = nombre
		}
		filas = append(filas, FilaTurno{
			ID:       t.ID,
			Servicio: nombre,
			Fecha:    t.Fecha,
			Hora:     t.Hora,
			Estado:   t.Estado,
		})
	}
	ahora := time.Now()
	pdf, err := uc.gen.GenerarReporteTurnos(ctx, filas, ahora)
	if err != nil {
		return "", nil, err
	}
	return nombreArchivo("turnos", ahora), pdf, nil
}

func nombreArchivo(prefijo string, t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", prefijo, t.Format("20060102_150405"))
}
