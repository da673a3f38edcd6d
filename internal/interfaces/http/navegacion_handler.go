package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/application/dto"
)

// SeccionNavegacion una entrada del menú con su gate de visibilidad.
type SeccionNavegacion struct {
	ID     string `json:"id"`
	Titulo string `json:"titulo"`
	Ruta   string `json:"ruta"`

	gate authz.Gate
}

// seccionesNavegacion es el catálogo del menú. Los fragmentos sin gate
// declarado quedan ocultos salvo que lo habiliten explícitamente
// (AllowUnguarded), igual que las rutas.
var seccionesNavegacion = []SeccionNavegacion{
	{ID: "inicio", Titulo: "Inicio", Ruta: "/", gate: authz.Gate{AllowUnguarded: true}},
	{ID: "tienda", Titulo: "Tienda", Ruta: "/tienda", gate: authz.Gate{AllowUnguarded: true}},
	{ID: "mis-turnos", Titulo: "Mis Turnos", Ruta: "/mis-turnos", gate: authz.Gate{Permission: "turnos.ver_propios"}},
	{ID: "admin-productos", Titulo: "Productos", Ruta: "/admin/productos", gate: authz.Gate{Permission: "productos.ver"}},
	{ID: "admin-servicios", Titulo: "Servicios", Ruta: "/admin/servicios", gate: authz.Gate{Permission: "servicios.ver"}},
	{ID: "admin-turnos", Titulo: "Agenda", Ruta: "/admin/turnos", gate: authz.Gate{Permission: "turnos.ver"}},
	{ID: "admin-pedidos", Titulo: "Pedidos", Ruta: "/admin/pedidos", gate: authz.Gate{Permission: "pedidos.ver"}},
	{ID: "admin-usuarios", Titulo: "Usuarios", Ruta: "/admin/usuarios", gate: authz.Gate{Permission: "usuarios.ver"}},
	{ID: "admin-roles", Titulo: "Roles y Permisos", Ruta: "/admin/roles", gate: authz.Gate{Permission: "roles.ver"}},
	{ID: "admin-reportes", Titulo: "Reportes", Ruta: "/admin/reportes", gate: authz.Gate{Permissions: []string{"pedidos.ver", "turnos.ver"}}},
	{ID: "admin-auditoria", Titulo: "Auditoría", Ruta: "/admin/auditoria", gate: authz.Gate{Permission: "auditoria.ver"}},
}

// NavegacionHandler arma el menú visible según los permisos del usuario.
type NavegacionHandler struct {
	loader snapshotLoader
}

// NewNavegacionHandler construye el handler.
func NewNavegacionHandler(loader snapshotLoader) *NavegacionHandler {
	return &NavegacionHandler{loader: loader}
}

// Get godoc
// @Summary      Secciones de navegación visibles para el usuario
// @Description  Evalúa el gate de cada sección contra el snapshot de permisos
// @Description  y devuelve solo las que el usuario puede ver. La decisión es
// @Description  en memoria: no consulta el backend por sección.
// @Tags         navegacion
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  SeccionNavegacion
// @Router       /api/navegacion [get]
func (h *NavegacionHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida", RedirectTo: "/login"})
	}
	snap, err := h.loader.Load(userID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SNAPSHOT_LOAD_FAILED", Message: "no se pudieron verificar los permisos, intente más tarde"})
	}
	visibles := make([]SeccionNavegacion, 0, len(seccionesNavegacion))
	for _, s := range seccionesNavegacion {
		if s.gate.Unguarded() && !s.gate.AllowUnguarded {
			log.Warn().Str("seccion", s.ID).Msg("sección de navegación sin gate declarado")
		}
		if s.gate.Allows(snap) {
			visibles = append(visibles, s)
		}
	}
	return c.JSON(visibles)
}
