package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
	"github.com/autolavado/lavadero-api/pkg/money"
)

// ServicioUseCase CRUD del panel de servicios agendables.
type ServicioUseCase struct {
	repo    repository.ServicioRepository
	auditor *Auditor
}

// NewServicioUseCase construye el caso de uso.
func NewServicioUseCase(repo repository.ServicioRepository, auditor *Auditor) *ServicioUseCase {
	return &ServicioUseCase{repo: repo, auditor: auditor}
}

// Create valida y persiste el servicio.
func (uc *ServicioUseCase) Create(usuarioID string, in dto.CreateServicioRequest) (*dto.ServicioResponse, error) {
	if in.Nombre == "" || len(in.Nombre) > 100 {
		return nil, domain.ErrInvalidInput
	}
	precio, err := money.Parse(in.Precio)
	if err != nil || precio.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	servicio := &entity.Servicio{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      precio,
		Visible:     in.Visible,
		Activo:      true,
		ImagenURL:   in.ImagenURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(servicio); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "servicios", "crear", map[string]string{"id": servicio.ID, "nombre": servicio.Nombre})
	return toServicioResponse(servicio), nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServicioUseCase) GetByID(id string) (*dto.ServicioResponse, error) {
	servicio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, nil
	}
	return toServicioResponse(servicio), nil
}

// Update edición parcial de servicio.
func (uc *ServicioUseCase) Update(usuarioID, id string, in dto.UpdateServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" || len(*in.Nombre) > 100 {
			return nil, domain.ErrInvalidInput
		}
		servicio.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		servicio.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		precio, err := money.Parse(*in.Precio)
		if err != nil || precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		servicio.Precio = precio
	}
	if in.Visible != nil {
		servicio.Visible = *in.Visible
	}
	if in.ImagenURL != nil {
		servicio.ImagenURL = *in.ImagenURL
	}
	servicio.UpdatedAt = time.Now()
	if err := uc.repo.Update(servicio); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "servicios", "editar", map[string]string{"id": id})
	return toServicioResponse(servicio), nil
}

// List devuelve la colección completa, con filtro por substring del nombre.
func (uc *ServicioUseCase) List(soloVisibles bool, buscar string) ([]dto.ServicioResponse, error) {
	lista, err := uc.repo.List(soloVisibles)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServicioResponse, 0, len(lista))
	buscar = strings.ToLower(strings.TrimSpace(buscar))
	for _, s := range lista {
		if buscar != "" && !strings.Contains(strings.ToLower(s.Nombre), buscar) {
			continue
		}
		items = append(items, *toServicioResponse(s))
	}
	return items, nil
}

// Delete soft delete: marca el servicio inactivo.
func (uc *ServicioUseCase) Delete(usuarioID, id string) error {
	servicio, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if servicio == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.SetActivo(id, false); err != nil {
		return err
	}
	uc.auditor.Registrar(usuarioID, "servicios", "eliminar", map[string]string{"id": id})
	return nil
}

func toServicioResponse(s *entity.Servicio) *dto.ServicioResponse {
	if s == nil {
		return nil
	}
	return &dto.ServicioResponse{
		ID:          s.ID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		Precio:      money.Format(s.Precio),
		Visible:     s.Visible,
		Activo:      s.Activo,
		ImagenURL:   s.ImagenURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
