package authz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

// Fakes mínimos: embeben la interfaz para no implementar métodos que el
// Loader no usa.

type fakePerfiles struct {
	repository.PerfilRepository
	porID map[string]*entity.Perfil
}

func (f *fakePerfiles) GetByID(id string) (*entity.Perfil, error) {
	return f.porID[id], nil
}

type fakeRoles struct {
	repository.RolRepository
	porID map[string]*entity.Rol
}

func (f *fakeRoles) GetByID(id string) (*entity.Rol, error) {
	return f.porID[id], nil
}

type fakePermisos struct {
	repository.PermisoRepository
	codigos  map[string][]string
	err      error
	llamadas int
}

func (f *fakePermisos) CodigosByPerfil(perfilID string) ([]string, error) {
	f.llamadas++
	if f.err != nil {
		return nil, f.err
	}
	return f.codigos[perfilID], nil
}

func armarLoader() (*authz.Loader, *fakePermisos) {
	perfiles := &fakePerfiles{porID: map[string]*entity.Perfil{
		"u1": {ID: "u1", Email: "ana@lavadero.com", Activo: true, RolID: "r1"},
		"u2": {ID: "u2", Email: "baja@lavadero.com", Activo: false, RolID: "r1"},
	}}
	roles := &fakeRoles{porID: map[string]*entity.Rol{
		"r1": {ID: "r1", Nombre: "Administrador", EsSistema: true, Activo: true},
	}}
	permisos := &fakePermisos{codigos: map[string][]string{
		"u1": {"productos.ver", "productos.crear"},
	}}
	return authz.NewLoader(perfiles, roles, permisos), permisos
}

func TestLoader_CargaSnapshotCompleto(t *testing.T) {
	loader, _ := armarLoader()

	s, err := loader.Load("u1")
	require.NoError(t, err)
	require.NotNil(t, s.Perfil)
	require.NotNil(t, s.Rol)
	assert.Equal(t, "ana@lavadero.com", s.Perfil.Email)
	assert.Equal(t, "Administrador", s.Rol.Nombre)
	assert.True(t, s.HasPermission("productos.crear"))
}

// El snapshot se sirve desde cache hasta que se invalida; la ventana de
// permisos viejos entre recargas es comportamiento esperado.
func TestLoader_CacheHastaInvalidate(t *testing.T) {
	loader, permisos := armarLoader()

	_, err := loader.Load("u1")
	require.NoError(t, err)
	_, err = loader.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, permisos.llamadas, "la segunda carga debe salir de cache")

	// Cambio de permisos en la DB: invisible hasta invalidar
	permisos.codigos["u1"] = []string{"productos.ver"}
	s, err := loader.Load("u1")
	require.NoError(t, err)
	assert.True(t, s.HasPermission("productos.crear"), "sin invalidar se ve el snapshot viejo")

	loader.Invalidate("u1")
	s, err = loader.Load("u1")
	require.NoError(t, err)
	assert.False(t, s.HasPermission("productos.crear"), "tras invalidar se recarga")
	assert.Equal(t, 2, permisos.llamadas)
}

func TestLoader_PerfilInexistente(t *testing.T) {
	loader, _ := armarLoader()

	_, err := loader.Load("nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoader_PerfilInactivo(t *testing.T) {
	loader, _ := armarLoader()

	_, err := loader.Load("u2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLoader_ErrorDeConsulta(t *testing.T) {
	loader, permisos := armarLoader()
	permisos.err = errors.New("db caída")

	_, err := loader.Load("u1")
	assert.Error(t, err)
}
