package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/platewise/platewise/internal/domain"
	"github.com/platewise/platewise/internal/security"
)

func testJWTManager() *security.JWTManager {
	return security.NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("EmailExists", ctx, "new@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		svc := NewAuthService(repo, testJWTManager())

		user, err := svc.Register(ctx, domain.UserCreate{Email: "new@example.com", Password: "hunter2hunter2"})
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.NotEqual(t, uuid.Nil, user.ID)
		// Hash, never the plaintext
		assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))

		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("EmailExists", ctx, "taken@example.com").Return(true, nil)

		svc := NewAuthService(repo, testJWTManager())

		_, err := svc.Register(ctx, domain.UserCreate{Email: "taken@example.com", Password: "hunter2hunter2"})
		assert.EqualError(t, err, "email already registered")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByEmail", ctx, "user@example.com").Return(user, nil)
		repo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		svc := NewAuthService(repo, testJWTManager())

		tokens, err := svc.Login(ctx, domain.UserLogin{Email: "user@example.com", Password: "correct horse"})
		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByEmail", ctx, "user@example.com").Return(user, nil)

		svc := NewAuthService(repo, testJWTManager())

		_, err := svc.Login(ctx, domain.UserLogin{Email: "user@example.com", Password: "wrong"})
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

		svc := NewAuthService(repo, testJWTManager())

		_, err := svc.Login(ctx, domain.UserLogin{Email: "ghost@example.com", Password: "whatever"})
		assert.EqualError(t, err, "invalid credentials")
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	manager := testJWTManager()

	user := &domain.User{ID: uuid.New(), Email: "user@example.com"}

	t.Run("valid refresh token", func(t *testing.T) {
		_, refreshToken, _, err := manager.GenerateTokenPair(user.ID, user.Email)
		assert.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByID", ctx, user.ID).Return(user, nil)

		svc := NewAuthService(repo, manager)

		tokens, err := svc.Refresh(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), manager)

		_, err := svc.Refresh(ctx, "not-a-token")
		assert.EqualError(t, err, "invalid refresh token")
	})
}
