package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tasklist-api/internal/application/usecase"
	"github.com/jhoicas/tasklist-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TaskUC    *usecase.TaskUseCase
	RoleUC    *usecase.RoleUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
//
// Políticas por ruta:
//   - POST /role/:role      abierta (cualquiera puede crear roles)
//   - POST /role-add/:role  autenticado
//   - POST /task            autenticado
//   - DELETE /task/:id      autenticado + rol "remove"
//   - PUT  /task/:id        autenticado (completed como query param)
//   - GET  /tasks           autenticado
func Router(app *fiber.App, deps RouterDeps) {
	roleHandler := NewRoleHandler(deps.RoleUC)
	taskHandler := NewTaskHandler(deps.TaskUC)

	// Creación de roles: sin política, igual que el contrato original.
	app.Post("/role/:role", roleHandler.Create)

	// Rutas protegidas: Bearer Token + enriquecimiento de roles desde la DB.
	protected := app.Group("/",
		AuthMiddleware(deps.JWTSecret),
		ClaimsMiddleware(deps.RoleUC),
	)

	protected.Post("/role-add/:role", roleHandler.AssignSelf)

	protected.Post("/task", taskHandler.Create)
	protected.Delete("/task/:id", RequireRole(entity.RoleRemove), taskHandler.Remove)
	protected.Put("/task/:id", taskHandler.Update)
	protected.Get("/tasks", taskHandler.List)
}
