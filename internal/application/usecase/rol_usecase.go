package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/saga"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

// RolUseCase CRUD de roles y asignación de permisos. La eliminación de roles
// de sistema se rechaza antes de tocar la DB.
type RolUseCase struct {
	roles    repository.RolRepository
	permisos repository.PermisoRepository
	auditor  *Auditor
}

// NewRolUseCase construye el caso de uso.
func NewRolUseCase(roles repository.RolRepository, permisos repository.PermisoRepository, auditor *Auditor) *RolUseCase {
	return &RolUseCase{roles: roles, permisos: permisos, auditor: auditor}
}

// Create alta de rol no-sistema.
func (uc *RolUseCase) Create(usuarioID string, in dto.CreateRolRequest) (*dto.RolResponse, error) {
	if in.Nombre == "" || len(in.Nombre) > 50 {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.roles.GetByNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	rol := &entity.Rol{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		EsSistema:   false,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roles.Create(rol); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "roles", "crear", map[string]string{"id": rol.ID, "nombre": rol.Nombre})
	return toRolResponse(rol), nil
}

// GetByID obtiene un rol por ID.
func (uc *RolUseCase) GetByID(id string) (*dto.RolResponse, error) {
	rol, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, nil
	}
	return toRolResponse(rol), nil
}

// List devuelve todos los roles.
func (uc *RolUseCase) List() ([]dto.RolResponse, error) {
	lista, err := uc.roles.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RolResponse, 0, len(lista))
	for _, r := range lista {
		items = append(items, *toRolResponse(r))
	}
	return items, nil
}

// Update edición parcial de rol. EsSistema no se toca por API.
func (uc *RolUseCase) Update(usuarioID, id string, in dto.UpdateRolRequest) (*dto.RolResponse, error) {
	rol, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" || len(*in.Nombre) > 50 {
			return nil, domain.ErrInvalidInput
		}
		rol.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		rol.Descripcion = *in.Descripcion
	}
	if in.Activo != nil {
		rol.Activo = *in.Activo
	}
	rol.UpdatedAt = time.Now()
	if err := uc.roles.Update(rol); err != nil {
		return nil, err
	}
	uc.auditor.Registrar(usuarioID, "roles", "editar", map[string]string{"id": id})
	return toRolResponse(rol), nil
}

// Delete elimina un rol. Los roles de sistema se rechazan acá, antes de
// cualquier llamada al repositorio de borrado.
func (uc *RolUseCase) Delete(usuarioID, id string) error {
	rol, err := uc.roles.GetByID(id)
	if err != nil {
		return err
	}
	if rol == nil {
		return domain.ErrNotFound
	}
	if rol.EsSistema {
		return domain.ErrRolSistema
	}
	if err := uc.roles.Delete(id); err != nil {
		return err
	}
	uc.auditor.Registrar(usuarioID, "roles", "eliminar", map[string]string{"id": id, "nombre": rol.Nombre})
	return nil
}

// ListPermisos catálogo completo de permisos.
func (uc *RolUseCase) ListPermisos() ([]dto.PermisoResponse, error) {
	lista, err := uc.permisos.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PermisoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, toPermisoResponse(p))
	}
	return items, nil
}

// PermisosDeRol permisos asignados a un rol.
func (uc *RolUseCase) PermisosDeRol(rolID string) ([]dto.PermisoResponse, error) {
	rol, err := uc.roles.GetByID(rolID)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, domain.ErrNotFound
	}
	lista, err := uc.permisos.ListByRol(rolID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PermisoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, toPermisoResponse(p))
	}
	return items, nil
}

// AplicarDiffPermisos aplica el mapa de cambios pendientes del panel como una
// saga: cada alta/baja individual lleva su undo, y ante el primer fallo se
// revierten los cambios ya aplicados en orden inverso.
func (uc *RolUseCase) AplicarDiffPermisos(usuarioID, rolID string, in dto.DiffPermisosRequest) error {
	rol, err := uc.roles.GetByID(rolID)
	if err != nil {
		return err
	}
	if rol == nil {
		return domain.ErrNotFound
	}
	s := saga.New()
	for _, permisoID := range in.Otorgar {
		pid := permisoID
		s.Add("otorgar "+pid,
			func() error { return uc.permisos.Asignar(rolID, pid) },
			func() error { return uc.permisos.Revocar(rolID, pid) },
		)
	}
	for _, permisoID := range in.Revocar {
		pid := permisoID
		s.Add("revocar "+pid,
			func() error { return uc.permisos.Revocar(rolID, pid) },
			func() error { return uc.permisos.Asignar(rolID, pid) },
		)
	}
	if err := s.Run(); err != nil {
		return err
	}
	uc.auditor.Registrar(usuarioID, "roles", "permisos", map[string]any{
		"rol_id": rolID, "otorgados": len(in.Otorgar), "revocados": len(in.Revocar),
	})
	return nil
}

func toRolResponse(r *entity.Rol) *dto.RolResponse {
	if r == nil {
		return nil
	}
	return &dto.RolResponse{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		EsSistema:   r.EsSistema,
		Activo:      r.Activo,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toPermisoResponse(p *entity.Permiso) dto.PermisoResponse {
	return dto.PermisoResponse{
		ID:          p.ID,
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Modulo:      p.Modulo,
	}
}
