package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/tasklist-api/internal/application/dto"
	"github.com/jhoicas/tasklist-api/internal/application/usecase"
	"github.com/jhoicas/tasklist-api/internal/domain"
)

// RoleHandler maneja creación de roles y auto-asignación al caller.
// Las respuestas son strings planos de estado, no estructuras.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol por nombre (abierto)
// @Tags         roles
// @Produce      plain
// @Param        role  path  string  true  "nombre del rol"
// @Success      200  {string}  string  "Added role!"
// @Router       /role/{role} [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	// El nombre se retiene más allá del request: copia obligatoria, el buffer
	// de fasthttp se reutiliza y corrompería la clave almacenada.
	if err := h.uc.CreateRole(utils.CopyString(c.Params("role"))); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendString("Added role!")
}

// AssignSelf godoc
// @Summary      Asignar un rol existente al caller autenticado
// @Tags         roles
// @Security     Bearer
// @Produce      plain
// @Param        role  path  string  true  "nombre del rol"
// @Success      200  {string}  string  "Added user to role!"
// @Failure      404  "el rol no existe"
// @Router       /role-add/{role} [post]
func (h *RoleHandler) AssignSelf(c *fiber.Ctx) error {
	err := h.uc.AssignRole(c.Params("role"), GetUserID(c))
	if err != nil {
		// Caller autenticado pero no registrado: 200 con string de estado,
		// comportamiento heredado del contrato.
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.SendString("No such user")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendString("Added user to role!")
}
