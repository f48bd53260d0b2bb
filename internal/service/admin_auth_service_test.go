package service

import (
	"context"
	"testing"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLoginWithoutDatabase(t *testing.T) {
	svc := NewAdminAuthService(nil, time.Hour, logger.NewNopLogger())

	_, err := svc.Login(context.Background(), &dto.AdminLoginRequest{Email: "admin@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestAdminLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "service-secret")
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := newMemoryStore()
	require.NoError(t, store.NewUnitOfWork(ctx).AdminUserRepository().Create(ctx, &entity.AdminUser{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}))

	svc := NewAdminAuthService(store, time.Hour, logger.NewNopLogger())

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", " Admin@Example.com ", "secret123", nil},
		{"wrong password", "admin@example.com", "secret124", ErrInvalidCredentials},
		{"unknown email", "nobody@example.com", "secret123", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, &dto.AdminLoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			token, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (interface{}, error) {
				return []byte("service-secret"), nil
			})
			require.NoError(t, err)
			claims := token.Claims.(jwt.MapClaims)
			assert.Equal(t, "admin", claims["role"])
			assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
		})
	}

	assert.NotNil(t, store.admins["admin@example.com"].LastLoginAt)
}
