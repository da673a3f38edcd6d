package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/auth"
	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/application/pedido"
	"github.com/autolavado/lavadero-api/internal/application/reporte"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	"github.com/autolavado/lavadero-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Loader     *authz.Loader
	ProductoUC *usecase.ProductoUseCase
	ServicioUC *usecase.ServicioUseCase
	PerfilUC   *usecase.PerfilUseCase
	RolUC      *usecase.RolUseCase
	TurnoUC    *usecase.TurnoUseCase
	PedidoUC   *pedido.UseCase
	ReporteUC  *reporte.UseCase
	Auditor    *usecase.Auditor
	Bucket     *storage.BucketClient
	JWTSecret  string
}

// Router registra las rutas de la API. Las rutas del back office llevan su
// gate de permisos; las públicas (vitrina, auth) no requieren sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/reset-password/confirm", authHandler.ConfirmResetPassword)

	// Vitrina pública (sin sesión)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	servicioHandler := NewServicioHandler(deps.ServicioUC)
	api.Get("/productos/publicos", productoHandler.ListPublico)
	api.Get("/servicios/publicos", servicioHandler.ListPublico)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Put("/auth/password", authHandler.UpdatePassword)

	// Navegación (visibilidad por snapshot)
	navHandler := NewNavegacionHandler(deps.Loader)
	protected.Get("/navegacion", navHandler.Get)

	// Perfil propio
	perfilHandler := NewPerfilHandler(deps.PerfilUC)
	protected.Get("/perfiles/me", perfilHandler.Me)
	protected.Put("/perfiles/me", perfilHandler.UpdateMe)

	// Turnos: reservar y ver los propios es de cualquier usuario logueado con
	// el permiso de cliente; la agenda completa es del back office.
	turnoHandler := NewTurnoHandler(deps.TurnoUC)
	protected.Post("/turnos", RequirePermission("turnos.reservar", deps.Loader), turnoHandler.Crear)
	protected.Get("/turnos/mis", RequirePermission("turnos.ver_propios", deps.Loader), turnoHandler.MisTurnos)
	protected.Get("/turnos", RequirePermission("turnos.ver", deps.Loader), turnoHandler.List)
	protected.Get("/turnos/:id", RequirePermission("turnos.ver", deps.Loader), turnoHandler.GetByID)
	protected.Put("/turnos/:id", RequirePermission("turnos.editar", deps.Loader), turnoHandler.Update)

	// Pedidos: comprar es del cliente; el panel es del back office.
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	protected.Post("/pedidos", RequirePermission("pedidos.comprar", deps.Loader), pedidoHandler.Crear)
	protected.Get("/pedidos", RequirePermission("pedidos.ver", deps.Loader), pedidoHandler.List)
	protected.Get("/pedidos/:id", RequirePermission("pedidos.ver", deps.Loader), pedidoHandler.GetByID)
	protected.Put("/pedidos/:id", RequirePermission("pedidos.editar", deps.Loader), pedidoHandler.ActualizarEstados)

	// Productos (panel admin)
	protected.Get("/productos", RequirePermission("productos.ver", deps.Loader), productoHandler.List)
	protected.Get("/productos/:id", RequirePermission("productos.ver", deps.Loader), productoHandler.GetByID)
	protected.Post("/productos", RequirePermission("productos.crear", deps.Loader), productoHandler.Create)
	protected.Put("/productos/:id", RequirePermission("productos.editar", deps.Loader), productoHandler.Update)
	protected.Delete("/productos/:id", RequirePermission("productos.eliminar", deps.Loader), productoHandler.Delete)

	// Servicios (panel admin)
	protected.Get("/servicios", RequirePermission("servicios.ver", deps.Loader), servicioHandler.List)
	protected.Get("/servicios/:id", RequirePermission("servicios.ver", deps.Loader), servicioHandler.GetByID)
	protected.Post("/servicios", RequirePermission("servicios.crear", deps.Loader), servicioHandler.Create)
	protected.Put("/servicios/:id", RequirePermission("servicios.editar", deps.Loader), servicioHandler.Update)
	protected.Delete("/servicios/:id", RequirePermission("servicios.eliminar", deps.Loader), servicioHandler.Delete)

	// Imágenes (comparten permisos de edición de catálogo)
	imagenHandler := NewImagenHandler(deps.Bucket)
	protected.Post("/imagenes/:carpeta", RequireAnyPermission(deps.Loader, "productos.editar", "servicios.editar"), imagenHandler.Subir)

	// Usuarios (panel admin)
	protected.Get("/perfiles", RequirePermission("usuarios.ver", deps.Loader), perfilHandler.List)
	protected.Get("/perfiles/:id", RequirePermission("usuarios.ver", deps.Loader), perfilHandler.GetByID)
	protected.Put("/perfiles/:id", RequirePermission("usuarios.editar", deps.Loader), perfilHandler.Update)
	protected.Delete("/perfiles/:id", RequirePermission("usuarios.eliminar", deps.Loader), perfilHandler.Desactivar)

	// Roles y permisos (panel admin)
	rolHandler := NewRolHandler(deps.RolUC)
	protected.Get("/roles", RequirePermission("roles.ver", deps.Loader), rolHandler.List)
	protected.Get("/roles/:id", RequirePermission("roles.ver", deps.Loader), rolHandler.GetByID)
	protected.Post("/roles", RequirePermission("roles.crear", deps.Loader), rolHandler.Create)
	protected.Put("/roles/:id", RequirePermission("roles.editar", deps.Loader), rolHandler.Update)
	protected.Delete("/roles/:id", RequirePermission("roles.eliminar", deps.Loader), rolHandler.Delete)
	protected.Get("/permisos", RequirePermission("roles.ver", deps.Loader), rolHandler.ListPermisos)
	protected.Get("/roles/:id/permisos", RequirePermission("roles.ver", deps.Loader), rolHandler.PermisosDeRol)
	protected.Put("/roles/:id/permisos", RequirePermission("roles.editar", deps.Loader), rolHandler.AplicarDiffPermisos)

	// Reportes: requieren el permiso de lectura del recurso exportado.
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	protected.Get("/reportes/pedidos", RequirePermission("pedidos.ver", deps.Loader), reporteHandler.Pedidos)
	protected.Get("/reportes/turnos", RequirePermission("turnos.ver", deps.Loader), reporteHandler.Turnos)

	// Auditoría (solo lectura)
	auditoriaHandler := NewAuditoriaHandler(deps.Auditor)
	protected.Get("/auditoria", RequirePermission("auditoria.ver", deps.Loader), auditoriaHandler.List)
}
