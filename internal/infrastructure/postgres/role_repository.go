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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL
// (tablas roles y user_roles).
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Create persiste un rol nuevo; nombre duplicado -> domain.ErrDuplicate.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `INSERT INTO roles (id, name) VALUES ($1, $2)`
	_, err := r.pool.Exec(context.Background(), query, role.ID, role.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByName obtiene un rol por nombre. Devuelve (nil, nil) si no existe.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	query := `SELECT id, name FROM roles WHERE name = $1`
	var role entity.Role
	err := r.pool.QueryRow(context.Background(), query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// AssignToUser vincula rol y usuario. Re-asignar el mismo rol no es error
// (ON CONFLICT DO NOTHING sobre la PK compuesta).
func (r *RoleRepo) AssignToUser(userID, roleID string) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, userID, roleID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

// ListNamesByUser devuelve los nombres de rol asignados al usuario.
func (r *RoleRepo) ListNamesByUser(userID string) ([]string, error) {
	query := `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles by user: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
