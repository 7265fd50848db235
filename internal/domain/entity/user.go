package entity

import "time"

// User representa un usuario del sistema. El registro de usuarios lo hace el
// colaborador de identidad externo; este servicio solo los consulta como
// dueños de tareas y portadores de roles.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
