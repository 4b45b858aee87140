package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*User), args.Error(1)
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, _ := HashPassword("s3nha-f0rte")
	stored := &User{ID: 1, Name: "Admin", Email: "admin@grafica.com", Role: RoleAdmin, PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByEmail", ctx, "admin@grafica.com").Return(stored, nil)

		token, u, err := svc.Login(ctx, "  Admin@Grafica.com ", "s3nha-f0rte")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByEmail", ctx, "admin@grafica.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "admin@grafica.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email maps to same error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByEmail", ctx, "ghost@grafica.com").Return(nil, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "ghost@grafica.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success hashes password and lowercases email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

		u, err := svc.Register(ctx, RegisterInput{
			Name:     "João",
			Email:    "Joao@Grafica.com",
			Password: "long-enough-pw",
			Role:     RoleEmployee,
		})
		require.NoError(t, err)
		assert.Equal(t, "joao@grafica.com", u.Email)
		assert.NotEqual(t, "long-enough-pw", u.PasswordHash)
		assert.True(t, CheckPasswordHash("long-enough-pw", u.PasswordHash))
	})

	t.Run("Short password rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Register(ctx, RegisterInput{Name: "X", Email: "x@y.com", Password: "short", Role: RoleAdmin})
		assert.Error(t, err)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Register(ctx, RegisterInput{Name: "X", Email: "x@y.com", Password: "long-enough-pw", Role: "OWNER"})
		assert.Error(t, err)
	})
}
