package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/tasklist-api/internal/domain"
	"github.com/jhoicas/tasklist-api/internal/domain/entity"
	"github.com/jhoicas/tasklist-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
// El filtro de dueño va siempre en el SQL: una tarea ajena es indistinguible
// de una que no existe.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create inserta la tarea y asigna el ID generado por la DB.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (title, description, completed, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		task.Title, task.Description, task.Completed, task.UserID,
	).Scan(&task.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByOwnerAndID obtiene una tarea del dueño. Devuelve (nil, nil) si no hay fila.
func (r *TaskRepo) GetByOwnerAndID(ownerID string, id int64) (*entity.Task, error) {
	query := `
		SELECT id, title, description, completed, user_id
		FROM tasks WHERE user_id = $1 AND id = $2`
	var t entity.Task
	err := r.pool.QueryRow(context.Background(), query, ownerID, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by owner and id: %w", err)
	}
	return &t, nil
}

// ListByOwner lista las tareas del dueño en orden de inserción.
func (r *TaskRepo) ListByOwner(ownerID string) ([]*entity.Task, error) {
	query := `
		SELECT id, title, description, completed, user_id
		FROM tasks WHERE user_id = $1 ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update persiste el flag completed de la tarea, filtrando por dueño.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `UPDATE tasks SET completed = $3 WHERE user_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query, task.UserID, task.ID, task.Completed)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina la tarea del dueño.
func (r *TaskRepo) Delete(ownerID string, id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
