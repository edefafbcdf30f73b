package model

import "github.com/google/uuid"

// TokenClaims is the caller identity asserted by a verified bearer token.
type TokenClaims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// IsAdmin reports whether the caller holds the admin role.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthResponse carries the issued credential and public account data.
type AuthResponse struct {
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
	Message string     `json:"message"`
}
