package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"faq-chat-be/internal/bootstrap"
	"faq-chat-be/internal/config"
	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/model"
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuth(t *testing.T) {
	db := openDB(t)
	t.Setenv("JWT_SECRET", "integration-secret")
	t.Setenv("LOG_FILE_PATH", t.TempDir()+"/app.log")
	t.Setenv("WS_LOG_FILE_PATH", t.TempDir()+"/ws.log")
	cfg := config.Load()

	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()
	app := server.New(cfg, container).GetApp()

	// 1. Seed Admin User
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := model.AdminUser{
		Email:        "testadmin@example.com",
		FullName:     "Test Admin",
		PasswordHash: string(adminHash),
	}
	db.Where("email = ?", admin.Email).Delete(&model.AdminUser{})
	require.NoError(t, db.Create(&admin).Error)

	defer func() {
		// Cleanup
		db.Delete(&model.AdminUser{}, admin.Id)
	}()

	login := func(password string) (int, serverutils.BaseResponse[dto.AdminLoginResponse]) {
		body, _ := json.Marshal(dto.AdminLoginRequest{Email: admin.Email, Password: password})
		req := httptest.NewRequest("POST", "/api/admin/v1/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var result serverutils.BaseResponse[dto.AdminLoginResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		return resp.StatusCode, result
	}

	t.Run("Login as Admin success", func(t *testing.T) {
		status, result := login("admin12345")
		assert.Equal(t, 200, status)
		assert.True(t, result.Success)
		require.NotEmpty(t, result.Data.AccessToken)

		req := httptest.NewRequest("GET", "/api/admin/v1/knowledge-base", nil)
		req.Header.Set("Authorization", "Bearer "+result.Data.AccessToken)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Invalid Password", func(t *testing.T) {
		status, result := login("wrongpassword")
		assert.Equal(t, 401, status)
		assert.False(t, result.Success)
	})
}
