package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grafica-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
	Register(ctx context.Context, input RegisterInput) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Warn("bad password", zap.Uint("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return "", nil, err
	}

	log.Info("user logged in", zap.Uint("user_id", u.ID), zap.String("role", u.Role))
	return token, u, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if input.Role != RoleAdmin && input.Role != RoleEmployee {
		return nil, fmt.Errorf("unknown role: %s", input.Role)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Role:         input.Role,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
