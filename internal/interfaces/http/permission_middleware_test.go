package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	apphttp "github.com/autolavado/lavadero-api/internal/interfaces/http"
	pkgjwt "github.com/autolavado/lavadero-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testRolID     = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "lavadero-test"
	testExpMin    = 60
)

// loaderFake devuelve un snapshot fijo (o un error) sin tocar la DB.
type loaderFake struct {
	permisos []string
	err      error
}

func (l *loaderFake) Load(userID string) (*authz.Snapshot, error) {
	if l.err != nil {
		return nil, l.err
	}
	perfil := &entity.Perfil{ID: userID, Activo: true}
	return authz.NewSnapshot(perfil, &entity.Rol{ID: testRolID}, l.permisos), nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireGate para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(loader *loaderFake, gate authz.Gate, opts apphttp.GateOptions) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireGate(gate, loader, opts),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// testToken genera un JWT válido para los tests.
func testToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRolID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireGate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el usuario tiene el permiso requerido → HTTP 200.
func TestRequireGate_ConPermisoAccede(t *testing.T) {
	loader := &loaderFake{permisos: []string{"productos.ver"}}
	app := buildTestApp(loader, authz.Gate{Permission: "productos.ver"}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un usuario con el permiso debe pasar el gate")
}

// Caso 2: sin el permiso y con pantalla de denegado → 403 con los faltantes.
func TestRequireGate_SinPermisoMuestraFaltantes(t *testing.T) {
	loader := &loaderFake{permisos: []string{"turnos.ver"}}
	app := buildTestApp(loader, authz.Gate{Permission: "productos.ver"}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Equal(t, []any{"productos.ver"}, body["missing"],
		"el 403 debe listar los permisos faltantes")
}

// Caso 2b: sin pantalla de denegado, la respuesta es un redirect 303 al home.
func TestRequireGate_SinPermisoRedirige(t *testing.T) {
	loader := &loaderFake{permisos: nil}
	app := buildTestApp(loader, authz.Gate{Permission: "productos.ver"}, apphttp.GateOptions{})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"redirect_to":"/"`)
}

// Caso 3: gate "alguno de la lista" pasa con un solo permiso presente.
func TestRequireGate_AnyConUnoAlcanza(t *testing.T) {
	loader := &loaderFake{permisos: []string{"servicios.editar"}}
	gate := authz.Gate{Permissions: []string{"productos.editar", "servicios.editar"}}
	app := buildTestApp(loader, gate, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3b: gate "todos" exige la lista completa.
func TestRequireGate_AllExigeTodos(t *testing.T) {
	loader := &loaderFake{permisos: []string{"pedidos.ver"}}
	gate := authz.Gate{Permissions: []string{"pedidos.ver", "turnos.ver"}, RequireAll: true}
	app := buildTestApp(loader, gate, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []any{"turnos.ver"}, body["missing"])
}

// Caso 4: gate sin permisos declarados deniega por defecto.
func TestRequireGate_SinPermisosDeclaradosDeniega(t *testing.T) {
	loader := &loaderFake{permisos: []string{"productos.ver"}}
	app := buildTestApp(loader, authz.Gate{}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un gate sin permisos solo concede con AllowUnguarded")
}

// Caso 4b: AllowUnguarded habilita explícitamente la ruta sin permisos.
func TestRequireGate_AllowUnguardedConcede(t *testing.T) {
	loader := &loaderFake{permisos: nil}
	app := buildTestApp(loader, authz.Gate{AllowUnguarded: true}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 5: fallo al cargar el snapshot → 503, sin revelar si los permisos alcanzaban.
func TestRequireGate_FalloDeSnapshotDevuelve503(t *testing.T) {
	loader := &loaderFake{err: errors.New("backend caído")}
	app := buildTestApp(loader, authz.Gate{Permission: "productos.ver"}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, testToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SNAPSHOT_LOAD_FAILED")
}

// Caso 6: sin header Authorization → 401 con redirect al login.
func TestRequireGate_SinAuthHeaderRetorna401(t *testing.T) {
	loader := &loaderFake{permisos: []string{"productos.ver"}}
	app := buildTestApp(loader, authz.Gate{Permission: "productos.ver"}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"redirect_to":"/login"`)
}

// Caso 7: token inválido → 401 antes de evaluar el gate.
func TestRequireGate_TokenInvalidoRetorna401(t *testing.T) {
	loader := &loaderFake{permisos: []string{"productos.ver"}}
	app := buildTestApp(loader, authz.Gate{Permission: "productos.ver"}, apphttp.GateOptions{ShowAccessDenied: true})

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"rol_id":  apphttp.GetRolID(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", testToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testRolID, body["rol_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRolID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, rolID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testRolID, rolID)
}

func TestJWT_TokenExpiradoRetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRolID, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrectoRetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRolID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
