package usecase

import (
	"strings"
	"time"

	"github.com/autolavado/lavadero-api/internal/application/auth"
	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

// PerfilUseCase panel de usuarios: listado, edición admin, autoservicio y
// desactivación (nunca borrado físico).
type PerfilUseCase struct {
	perfiles repository.PerfilRepository
	roles    repository.RolRepository
	auditor  *Auditor
}

// NewPerfilUseCase construye el caso de uso.
func NewPerfilUseCase(perfiles repository.PerfilRepository, roles repository.RolRepository, auditor *Auditor) *PerfilUseCase {
	return &PerfilUseCase{perfiles: perfiles, roles: roles, auditor: auditor}
}

// GetByID obtiene un perfil con el nombre de su rol.
func (uc *PerfilUseCase) GetByID(id string) (*dto.PerfilResponse, error) {
	perfil, err := uc.perfiles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, nil
	}
	rolNombre := ""
	if rol, err := uc.roles.GetByID(perfil.RolID); err == nil && rol != nil {
		rolNombre = rol.Nombre
	}
	return auth.ToPerfilResponse(perfil, rolNombre), nil
}

// List colección completa con filtro substring sobre nombre/apellido/email.
func (uc *PerfilUseCase) List(buscar string) ([]dto.PerfilResponse, error) {
	lista, err := uc.perfiles.List()
	if err != nil {
		return nil, err
	}
	buscar = strings.ToLower(strings.TrimSpace(buscar))
	items := make([]dto.PerfilResponse, 0, len(lista))
	for _, p := range lista {
		if buscar != "" {
			texto := strings.ToLower(p.Nombre + " " + p.Apellido + " " + p.Email)
			if !strings.Contains(texto, buscar) {
				continue
			}
		}
		items = append(items, *auth.ToPerfilResponse(p, ""))
	}
	return items, nil
}

// Update edición de perfil. esAdmin habilita el cambio de rol; el autoservicio
// solo toca los datos propios.
func (uc *PerfilUseCase) Update(usuarioID, id string, in dto.UpdatePerfilRequest, esAdmin bool) (*dto.PerfilResponse, error) {
	perfil, err := uc.perfiles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		perfil.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		perfil.Apellido = *in.Apellido
	}
	if in.DNI != nil {
		perfil.DNI = *in.DNI
	}
	if in.Telefono != nil {
		perfil.Telefono = *in.Telefono
	}
	if in.RolID != nil {
		if !esAdmin {
			return nil, domain.ErrForbidden
		}
		rol, err := uc.roles.GetByID(*in.RolID)
		if err != nil {
			return nil, err
		}
		if rol == nil {
			return nil, domain.ErrNotFound
		}
		perfil.RolID = rol.ID
	}
	perfil.UpdatedAt = time.Now()
	if err := uc.perfiles.Update(perfil); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "usuarios", "editar", map[string]string{"id": id})
	return auth.ToPerfilResponse(perfil, ""), nil
}

// Desactivar soft delete del perfil.
func (uc *PerfilUseCase) Desactivar(usuarioID, id string) error {
	perfil, err := uc.perfiles.GetByID(id)
	if err != nil {
		return err
	}
	if perfil == nil {
		return domain.ErrNotFound
	}
	if err := uc.perfiles.SetActivo(id, false); err != nil {
		return err
	}
	uc.auditor.Registrar(usuarioID, "usuarios", "desactivar", map[string]string{"id": id})
	return nil
}
