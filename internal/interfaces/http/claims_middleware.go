package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tasklist-api/internal/application/dto"
)

// roleSource es el contrato mínimo que necesita el middleware para cargar los
// roles del caller. Lo implementa *usecase.RoleUseCase; el uso de interfaz
// evita el import circular.
type roleSource interface {
	RolesForUser(ctx context.Context, userID string) ([]string, error)
}

// ClaimsMiddleware enriquece el request autenticado con los roles del caller
// leídos de la DB. Debe usarse DESPUÉS de AuthMiddleware y ANTES de cualquier
// RequireRole.
//
// Comportamiento:
//   - Caller sin ID o no registrado en la DB -> sigue sin roles, no es error:
//     un autenticado no registrado se trata como autenticado con cero roles.
//   - 503 Service Unavailable -> fallo de infraestructura al consultar la DB.
func ClaimsMiddleware(roles roleSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		names, err := roles.RolesForUser(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "CLAIMS_LOAD_FAILED",
				Message: "no se pudieron cargar los roles, intente más tarde",
			})
		}
		c.Locals(LocalRoles, names)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que exige uno de los roles indicados
// entre los cargados por ClaimsMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := GetRoles(c)
		for _, have := range roles {
			for _, want := range allowed {
				if have == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "rol requerido no asignado",
		})
	}
}
