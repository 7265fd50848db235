package repository

import "github.com/jhoicas/tasklist-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task (DIP).
// Todas las operaciones sobre una tarea concreta van filtradas por dueño:
// el SQL lleva siempre (user_id, id), nunca se filtra en memoria.
type TaskRepository interface {
	// Create inserta la tarea y asigna task.ID con el valor generado por la DB.
	Create(task *entity.Task) error
	// GetByOwnerAndID devuelve (nil, nil) si el dueño no tiene esa tarea.
	GetByOwnerAndID(ownerID string, id int64) (*entity.Task, error)
	ListByOwner(ownerID string) ([]*entity.Task, error)
	// Update persiste el flag completed (título y descripción son inmutables).
	Update(task *entity.Task) error
	Delete(ownerID string, id int64) error
}
