package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tasklist-api/internal/application/dto"
	"github.com/jhoicas/tasklist-api/internal/application/usecase"
	"github.com/jhoicas/tasklist-api/internal/domain"
)

// TaskHandler maneja las peticiones HTTP de tareas (protegido).
// Contrato de error: validación -> 400 sin cuerpo, tarea inexistente o ajena
// -> 404 sin cuerpo; solo los fallos inesperados llevan ErrorResponse.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "title y description"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   "validación: campos vacíos o caller no registrado"
// @Router       /task [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return h.toStatus(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar tarea propia (requiere rol "remove")
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  "la tarea no existe para este caller"
// @Router       /task/{id} [delete]
func (h *TaskHandler) Remove(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	out, err := h.uc.Remove(id, GetUserID(c))
	if err != nil {
		return h.toStatus(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Marcar tarea como completada (o no)
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id         path   int   true  "ID de la tarea"
// @Param        completed  query  bool  true  "nuevo valor del flag"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  "la tarea no existe para este caller"
// @Router       /task/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	callerID := GetUserID(c)
	if callerID == "" {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	completed := c.QueryBool("completed")
	out, err := h.uc.Update(id, completed, callerID)
	if err != nil {
		return h.toStatus(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tareas propias
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TaskResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return h.toStatus(c, err)
	}
	return c.JSON(out)
}

// toStatus traduce errores del caso de uso a códigos HTTP. Un caller que no
// resuelve a usuario registrado es señal de validación (400), igual que los
// campos vacíos: el wire no distingue ambos casos.
func (h *TaskHandler) toStatus(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrUserNotFound) {
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
