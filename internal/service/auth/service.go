package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/auth"
	"github.com/medichq/medic-api/pkg/errors"
	"github.com/medichq/medic-api/pkg/security"
	"github.com/medichq/medic-api/pkg/validate"
)

const minNameLen = 2

// Service handles registration and login. Emails are stored lowercased and
// compared case-insensitively.
type Service struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	tokens   auth.TokenService
}

func NewService(userRepo repository.UserRepository, hasher security.PasswordHasher, tokens auth.TokenService) *Service {
	return &Service{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if !validate.IsEmail(req.Email) {
		return nil, errors.InvalidInput("Invalid email format")
	}
	if !validate.IsPassword(req.Password) {
		return nil, errors.InvalidInput("Password must be at least 6 characters long")
	}
	if len(req.Name) < minNameLen {
		return nil, errors.InvalidInput("Name must be at least 2 characters long")
	}
	role := req.Role
	if role == "" {
		role = model.RolePatient
	}
	if !model.ValidRole(role) {
		return nil, errors.InvalidInput("Invalid role. Must be patient or admin")
	}

	if existing, _ := s.userRepo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, errors.Conflict("User with this email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.Internal(err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Name:         validate.Sanitize(req.Name),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal(err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, errors.Internal(err)
	}

	return &model.AuthResponse{
		Token:   token,
		User:    user.Public(),
		Message: "Registration successful",
	}, nil
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if !validate.IsEmail(req.Email) {
		return nil, errors.InvalidInput("Invalid email format")
	}

	// Unknown email and wrong password produce the same message.
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.Unauthenticated("Invalid email or password")
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, errors.Unauthenticated("Invalid email or password")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, errors.Internal(err)
	}

	return &model.AuthResponse{
		Token:   token,
		User:    user.Public(),
		Message: "Login successful",
	}, nil
}
