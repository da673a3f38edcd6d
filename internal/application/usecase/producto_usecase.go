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

// ProductoUseCase CRUD del panel de productos. El borrado es soft (Activo=false).
type ProductoUseCase struct {
	repo    repository.ProductoRepository
	auditor *Auditor
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, auditor *Auditor) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, auditor: auditor}
}

// Create valida los campos y persiste el producto.
func (uc *ProductoUseCase) Create(usuarioID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || len(in.Nombre) > 100 {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	precio, err := money.Parse(in.Precio)
	if err != nil || precio.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      precio,
		Stock:       in.Stock,
		Visible:     in.Visible,
		Activo:      true,
		ImagenURL:   in.ImagenURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "productos", "crear", map[string]string{"id": producto.ID, "nombre": producto.Nombre})
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update edición parcial. Stock y precio revalidan sus cotas.
func (uc *ProductoUseCase) Update(usuarioID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" || len(*in.Nombre) > 100 {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		precio, err := money.Parse(*in.Precio)
		if err != nil || precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Stock = *in.Stock
	}
	if in.Visible != nil {
		producto.Visible = *in.Visible
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = *in.ImagenURL
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "productos", "editar", map[string]string{"id": id})
	return toProductoResponse(producto), nil
}

// List devuelve la colección completa; buscar filtra por substring del nombre
// sobre lo ya traído (el panel original filtra del lado del cliente).
func (uc *ProductoUseCase) List(soloVisibles bool, buscar string) ([]dto.ProductoResponse, error) {
	lista, err := uc.repo.List(soloVisibles)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(lista))
	buscar = strings.ToLower(strings.TrimSpace(buscar))
	for _, p := range lista {
		if buscar != "" && !strings.Contains(strings.ToLower(p.Nombre), buscar) {
			continue
		}
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Delete soft delete: marca el producto inactivo.
func (uc *ProductoUseCase) Delete(usuarioID, id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.SetActivo(id, false); err != nil {
		return err
	}
	uc.auditor.Registrar(usuarioID, "productos", "eliminar", map[string]string{"id": id})
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      money.Format(p.Precio),
		Stock:       p.Stock,
		Visible:     p.Visible,
		Activo:      p.Activo,
		ImagenURL:   p.ImagenURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
