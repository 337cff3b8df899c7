// Package auth contiene los DTOs de registro, login y cuenta.
package auth

import (
	"time"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// RegisterRequest es el body de POST /api/auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// LoginRequest es el body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse es la vista pública de un usuario. Nunca incluye el hash.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse es la respuesta de un registro o login exitoso.
type AuthResponse struct {
	TokenType string       `json:"tokenType"`
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
}

// FromUser mapea la entidad de dominio a la vista pública.
func FromUser(u *repository.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}
