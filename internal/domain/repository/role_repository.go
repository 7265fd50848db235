package repository

import "github.com/jhoicas/tasklist-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role y la tabla de
// asignación user_roles.
type RoleRepository interface {
	// Create inserta el rol; devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(role *entity.Role) error
	// GetByName devuelve (nil, nil) si el rol no existe.
	GetByName(name string) (*entity.Role, error)
	// AssignToUser vincula rol y usuario; asignar dos veces no es error.
	AssignToUser(userID, roleID string) error
	ListNamesByUser(userID string) ([]string, error)
}
