package repository

import (
	"context"
	"time"
)

// User representa una cuenta del marketplace.
// Email se guarda siempre en minúsculas; la unicidad se chequea al registrar.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string // vacío = sin teléfono
	CreatedAt    time.Time
}

// UserRepository define operaciones de persistencia sobre usuarios.
type UserRepository interface {
	// Save guarda un usuario (upsert por ID, last-write-wins).
	Save(ctx context.Context, user *User) (*User, error)

	// FindByID busca un usuario por ID.
	// Retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca por email, case-insensitive.
	// Retorna ErrNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail indica si ya hay un usuario con ese email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// DeleteByID borra un usuario. Retorna false si no existía.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
