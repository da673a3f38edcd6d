package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autolavado/lavadero-api/internal/application/authz"
)

func snap(codigos ...string) *authz.Snapshot {
	return authz.NewSnapshot(nil, nil, codigos)
}

func TestHasPermission_Pertenencia(t *testing.T) {
	s := snap("productos.crear", "productos.editar", "turnos.ver")

	assert.True(t, s.HasPermission("productos.crear"))
	assert.True(t, s.HasPermission("turnos.ver"))
	assert.False(t, s.HasPermission("productos.eliminar"))
	assert.False(t, s.HasPermission(""))
}

func TestHasAnyPermission_InterseccionNoVacia(t *testing.T) {
	s := snap("pedidos.ver", "pedidos.editar")

	assert.True(t, s.HasAnyPermission("roles.ver", "pedidos.ver"))
	assert.False(t, s.HasAnyPermission("roles.ver", "roles.editar"))
	assert.False(t, s.HasAnyPermission(), "lista vacía no interseca con nada")
}

func TestHasAllPermissions_Subconjunto(t *testing.T) {
	s := snap("usuarios.ver", "usuarios.editar", "usuarios.eliminar")

	assert.True(t, s.HasAllPermissions("usuarios.ver", "usuarios.eliminar"))
	assert.False(t, s.HasAllPermissions("usuarios.ver", "roles.ver"))
	assert.True(t, s.HasAllPermissions(), "el subconjunto vacío siempre está incluido")
}

func TestSnapshotVacio(t *testing.T) {
	s := snap()

	assert.False(t, s.HasPermission("productos.crear"))
	assert.False(t, s.HasAnyPermission("productos.crear"))
	assert.True(t, s.HasAllPermissions())
}

func TestGate_PermisoUnico(t *testing.T) {
	s := snap("productos.crear")

	assert.True(t, authz.Gate{Permission: "productos.crear"}.Allows(s))
	assert.False(t, authz.Gate{Permission: "productos.eliminar"}.Allows(s))
}

func TestGate_ListaAlguno(t *testing.T) {
	s := snap("servicios.ver")

	g := authz.Gate{Permissions: []string{"productos.ver", "servicios.ver"}}
	assert.True(t, g.Allows(s))

	g = authz.Gate{Permissions: []string{"productos.ver", "pedidos.ver"}}
	assert.False(t, g.Allows(s))
}

func TestGate_ListaTodos(t *testing.T) {
	s := snap("roles.ver", "roles.editar")

	g := authz.Gate{Permissions: []string{"roles.ver", "roles.editar"}, RequireAll: true}
	assert.True(t, g.Allows(s))

	g = authz.Gate{Permissions: []string{"roles.ver", "roles.eliminar"}, RequireAll: true}
	assert.False(t, g.Allows(s))
}

// Un gate sin permisos declarados solo concede acceso con el flag explícito.
func TestGate_SinPermisos_FlagExplicito(t *testing.T) {
	s := snap("productos.crear")

	assert.False(t, authz.Gate{}.Allows(s), "sin AllowUnguarded debe denegar")
	assert.True(t, authz.Gate{AllowUnguarded: true}.Allows(s))
	assert.True(t, authz.Gate{}.Unguarded())
	assert.False(t, authz.Gate{Permission: "x"}.Unguarded())
}

func TestGate_Missing(t *testing.T) {
	s := snap("roles.ver")

	g := authz.Gate{Permissions: []string{"roles.ver", "roles.editar", "roles.eliminar"}, RequireAll: true}
	assert.Equal(t, []string{"roles.editar", "roles.eliminar"}, g.Missing(s))

	assert.Empty(t, authz.Gate{Permission: "roles.ver"}.Missing(s))
	assert.Equal(t, []string{"roles.editar"}, authz.Gate{Permission: "roles.editar"}.Missing(s))
}
