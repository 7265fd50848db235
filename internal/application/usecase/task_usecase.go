package usecase

import (
	"strings"

	"github.com/jhoicas/tasklist-api/internal/application/dto"
	"github.com/jhoicas/tasklist-api/internal/domain"
	"github.com/jhoicas/tasklist-api/internal/domain/entity"
	"github.com/jhoicas/tasklist-api/internal/domain/repository"
)

// TaskUseCase casos de uso CRUD de tareas. El callerID llega siempre como
// argumento explícito (lo resuelve el handler desde el token), nunca desde
// estado ambiente.
type TaskUseCase struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(tasks repository.TaskRepository, users repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{tasks: tasks, users: users}
}

// Create valida título y descripción (no vacíos ni solo espacios), resuelve el
// dueño y persiste la tarea con completed=false.
func (uc *TaskUseCase) Create(callerID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	task := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		UserID:      user.ID,
	}
	if err := uc.tasks.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Remove elimina la tarea del dueño y devuelve su último estado.
// (nil, nil) significa que el dueño no tiene esa tarea (el handler responde 404).
func (uc *TaskUseCase) Remove(id int64, callerID string) (*dto.TaskResponse, error) {
	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	task, err := uc.tasks.GetByOwnerAndID(user.ID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if err := uc.tasks.Delete(user.ID, id); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Update fija el flag completed de la tarea del dueño (idempotente).
// (nil, nil) significa que el dueño no tiene esa tarea.
func (uc *TaskUseCase) Update(id int64, completed bool, callerID string) (*dto.TaskResponse, error) {
	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	task, err := uc.tasks.GetByOwnerAndID(user.ID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	task.Completed = completed
	if err := uc.tasks.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List devuelve las tareas del dueño. Un callerID que no resuelve a usuario
// produce lista vacía, no error: asimetría deliberada respecto a Create/Remove/
// Update, es comportamiento observable del contrato.
func (uc *TaskUseCase) List(callerID string) ([]dto.TaskResponse, error) {
	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0)
	if user == nil {
		return items, nil
	}
	list, err := uc.tasks.ListByOwner(user.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range list {
		items = append(items, *toTaskResponse(t))
	}
	return items, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}
