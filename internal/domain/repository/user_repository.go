package repository

import "github.com/jhoicas/tasklist-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los lookups devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
