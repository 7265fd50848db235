package entity

// Task representa una tarea pendiente de un usuario.
// El ID lo asigna la base de datos al insertar (bigserial).
// UserID es el dueño y es inmutable después de crear; toda lectura o
// mutación se filtra por (user_id, id) en el repositorio.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	UserID      string
}
