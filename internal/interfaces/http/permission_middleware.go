package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/application/dto"
)

// snapshotLoader es el contrato mínimo que necesita el middleware para
// resolver el snapshot de permisos. Lo implementa *authz.Loader; el uso de
// interfaz permite fakes en tests.
type snapshotLoader interface {
	Load(userID string) (*authz.Snapshot, error)
}

// GateOptions controla la respuesta ante un acceso denegado.
type GateOptions struct {
	// ShowAccessDenied responde 403 con la lista de permisos faltantes en vez
	// de redirigir. Es el modo de las rutas del back office.
	ShowAccessDenied bool
	// RedirectTo destino del redirect cuando no se muestra el denegado ("/" por defecto).
	RedirectTo string
}

// RequireGate devuelve un middleware Fiber que evalúa el gate contra el
// snapshot del usuario autenticado. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → sin usuario en el contexto (redirige a /login).
//   - 503 Service Unavailable → fallo al cargar el snapshot; denegar acceso
//     sin revelar si los permisos alcanzaban.
//   - 403 Forbidden → gate denegado con ShowAccessDenied (incluye faltantes).
//   - 303 See Other → gate denegado sin ShowAccessDenied (redirect).
func RequireGate(gate authz.Gate, loader snapshotLoader, opts GateOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:       "UNAUTHORIZED",
				Message:    "sesión requerida",
				RedirectTo: "/login",
			})
		}

		snap, err := loader.Load(userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SNAPSHOT_LOAD_FAILED",
				Message: "no se pudieron verificar los permisos, intente más tarde",
			})
		}

		if gate.Unguarded() {
			// Ruta protegida sin permisos declarados: la decisión es del flag,
			// pero siempre queda rastro en el log.
			log.Warn().
				Str("ruta", c.Path()).
				Bool("permitida", gate.AllowUnguarded).
				Msg("gate sin permisos declarados")
		}

		if gate.Allows(snap) {
			return c.Next()
		}

		if opts.ShowAccessDenied {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no tenés permisos para acceder a esta sección",
				Missing: gate.Missing(snap),
			})
		}
		redirect := opts.RedirectTo
		if redirect == "" {
			redirect = "/"
		}
		return c.Status(fiber.StatusSeeOther).JSON(dto.ErrorResponse{
			Code:       "FORBIDDEN",
			Message:    "acceso denegado",
			RedirectTo: redirect,
		})
	}
}

// RequirePermission gate de un permiso único, con 403 explícito.
func RequirePermission(codigo string, loader snapshotLoader) fiber.Handler {
	return RequireGate(authz.Gate{Permission: codigo}, loader, GateOptions{ShowAccessDenied: true})
}

// RequireAnyPermission gate "alguno de la lista", con 403 explícito.
func RequireAnyPermission(loader snapshotLoader, codigos ...string) fiber.Handler {
	return RequireGate(authz.Gate{Permissions: codigos}, loader, GateOptions{ShowAccessDenied: true})
}

// RequireAllPermissions gate "todos los de la lista", con 403 explícito.
func RequireAllPermissions(loader snapshotLoader, codigos ...string) fiber.Handler {
	return RequireGate(authz.Gate{Permissions: codigos, RequireAll: true}, loader, GateOptions{ShowAccessDenied: true})
}
