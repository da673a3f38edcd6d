package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/pkg/jwt"
)

// Locals keys para UserID y RolID en Fiber.
const (
	LocalUserID = "user_id"
	LocalRolID  = "rol_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y RolID a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido", RedirectTo: "/login"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>", RedirectTo: "/login"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío", RedirectTo: "/login"})
		}
		userID, rolID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado", RedirectTo: "/login"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRolID, rolID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRolID devuelve el RolID del contexto (después del middleware de auth).
func GetRolID(c *fiber.Ctx) string {
	v := c.Locals(LocalRolID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
