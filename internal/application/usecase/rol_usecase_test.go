package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

type fakeRoles struct {
	repository.RolRepository
	porID      map[string]*entity.Rol
	eliminados []string
}

func (f *fakeRoles) GetByID(id string) (*entity.Rol, error) { return f.porID[id], nil }

func (f *fakeRoles) Delete(id string) error {
	f.eliminados = append(f.eliminados, id)
	return nil
}

type fakePermisos struct {
	repository.PermisoRepository
	asignados []string
	revocados []string
	fallaEn   string
}

func (f *fakePermisos) Asignar(rolID, permisoID string) error {
	if permisoID == f.fallaEn {
		return errors.New("fallo de insert")
	}
	f.asignados = append(f.asignados, permisoID)
	return nil
}

func (f *fakePermisos) Revocar(rolID, permisoID string) error {
	f.revocados = append(f.revocados, permisoID)
	return nil
}

func armarRoles() (*usecase.RolUseCase, *fakeRoles, *fakePermisos) {
	roles := &fakeRoles{porID: map[string]*entity.Rol{
		"sys":    {ID: "sys", Nombre: "Administrador", EsSistema: true, Activo: true},
		"custom": {ID: "custom", Nombre: "Cajero", EsSistema: false, Activo: true},
	}}
	permisos := &fakePermisos{}
	return usecase.NewRolUseCase(roles, permisos, usecase.NewAuditor(nil)), roles, permisos
}

// Eliminar un rol de sistema se rechaza antes de cualquier llamada de borrado.
func TestDeleteRol_SistemaRechazadoAntesDelBackend(t *testing.T) {
	uc, roles, _ := armarRoles()

	err := uc.Delete("admin", "sys")
	assert.ErrorIs(t, err, domain.ErrRolSistema)
	assert.Empty(t, roles.eliminados, "no debe llegar ninguna llamada al repositorio")
}

func TestDeleteRol_NoSistemaSeElimina(t *testing.T) {
	uc, roles, _ := armarRoles()

	require.NoError(t, uc.Delete("admin", "custom"))
	assert.Equal(t, []string{"custom"}, roles.eliminados)
}

func TestDeleteRol_Inexistente(t *testing.T) {
	uc, _, _ := armarRoles()

	assert.ErrorIs(t, uc.Delete("admin", "nada"), domain.ErrNotFound)
}

func TestAplicarDiffPermisos_AltasYBajas(t *testing.T) {
	uc, _, permisos := armarRoles()

	err := uc.AplicarDiffPermisos("admin", "custom", dto.DiffPermisosRequest{
		Otorgar: []string{"p1", "p2"},
		Revocar: []string{"p3"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, permisos.asignados)
	assert.Equal(t, []string{"p3"}, permisos.revocados)
}

// El diff se aplica como saga: si una alta falla, las ya aplicadas se revierten.
func TestAplicarDiffPermisos_FalloCompensaLasAplicadas(t *testing.T) {
	uc, _, permisos := armarRoles()
	permisos.fallaEn = "p2"

	err := uc.AplicarDiffPermisos("admin", "custom", dto.DiffPermisosRequest{
		Otorgar: []string{"p1", "p2", "p3"},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"p1"}, permisos.asignados, "solo p1 llegó a aplicarse")
	assert.Equal(t, []string{"p1"}, permisos.revocados, "p1 debe revertirse")
}
