package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jhoicas/tasklist-api/internal/domain"
	"github.com/jhoicas/tasklist-api/internal/domain/entity"
	"github.com/jhoicas/tasklist-api/internal/domain/repository"
)

// RoleUseCase casos de uso de roles: creación, asignación al caller y carga de
// roles para el enriquecimiento de claims por request.
type RoleUseCase struct {
	roles repository.RoleRepository
	users repository.UserRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles repository.RoleRepository, users repository.UserRepository) *RoleUseCase {
	return &RoleUseCase{roles: roles, users: users}
}

// CreateRole crea un rol por nombre. Si ya existe no es error: el contrato
// responde "Added role!" igualmente.
func (uc *RoleUseCase) CreateRole(name string) error {
	role := &entity.Role{
		ID:   uuid.New().String(),
		Name: name,
	}
	err := uc.roles.Create(role)
	if errors.Is(err, domain.ErrDuplicate) {
		return nil
	}
	return err
}

// AssignRole asigna el rol (por nombre) al usuario callerID.
// Devuelve ErrUserNotFound si el caller no resuelve a un usuario registrado y
// ErrNotFound si el rol no fue creado antes vía CreateRole.
func (uc *RoleUseCase) AssignRole(name, callerID string) error {
	user, err := uc.users.GetByID(callerID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	role, err := uc.roles.GetByName(name)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.roles.AssignToUser(user.ID, role.ID)
}

// RolesForUser carga los nombres de rol del usuario para el middleware de
// enriquecimiento. Usuario desconocido o sin roles -> conjunto vacío, sin
// error: un autenticado no registrado es un autenticado con cero roles.
func (uc *RoleUseCase) RolesForUser(_ context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return uc.roles.ListNamesByUser(user.ID)
}
