package dto

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
}

// TaskResponse salida de una tarea (nombres de campo estables en el wire).
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
