package entity

// Nombre del rol que habilita el borrado de tareas.
const RoleRemove = "remove"

// Role agrupa permisos bajo un nombre (ej. "remove").
// Se crea bajo demanda y se asigna a usuarios; no existe camino de borrado.
type Role struct {
	ID   string
	Name string
}
