package model

import (
	"time"

	"github.com/google/uuid"
)

// User role constants
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is a known account role.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleAdmin
}

// User represents a platform account. The role is fixed at creation and the
// password hash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public strips credentials for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// RegisterRequest represents registration parameters.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest represents login parameters.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
