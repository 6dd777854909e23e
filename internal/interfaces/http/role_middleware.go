package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/domain/access"
)

// RequireRole devuelve un middleware Fiber que verifica si el rol del token
// JWT pertenece al grupo de capacidades. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 403 Forbidden → rol fuera del grupo (incluye rol desconocido o vacío).
//   - La comparación es cerrada por defecto y sin jerarquía: la membresía se
//     enumera en las tablas de internal/domain/access.
func RequireRole(group access.Group) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if !access.HasRole(role, group) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol no tiene acceso a esta capacidad",
			})
		}
		return c.Next()
	}
}
