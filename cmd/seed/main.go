// seed crea un usuario de desarrollo y emite un token Bearer para probar la
// API sin el colaborador de identidad real.
//
// Uso: go run ./cmd/seed [email] [password]
// Por defecto usa demo@tasklist.local / demo-password. Idempotente: si el
// email ya existe, reutiliza ese usuario y solo emite el token.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tasklist-api/internal/domain/entity"
	"github.com/jhoicas/tasklist-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tasklist-api/pkg/config"
	"github.com/jhoicas/tasklist-api/pkg/jwt"
)

func main() {
	email := "demo@tasklist.local"
	password := "demo-password"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET es requerido para emitir el token")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	user, err := users.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		user = &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(user); err != nil {
			fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario creado: %s (%s)\n", user.Email, user.ID)
	} else {
		fmt.Printf("Usuario existente: %s (%s)\n", user.Email, user.ID)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, user.ID, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Emitir token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bearer %s\n", token)
}
