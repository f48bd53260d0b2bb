package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/repository/memory"
	"faq-chat-be/internal/service"
	"faq-chat-be/pkg/faq"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *faq.Document {
	return &faq.Document{
		FAQs: []faq.DocumentEntry{
			{
				Question: "¿Cuánto tarda el envío?",
				Answer:   "Entre 3 y 5 días hábiles.",
				Keywords: []string{"envio"},
				Category: "shipping",
			},
		},
		Greetings:   []string{"¡Hola! ¿En qué te ayudo?"},
		Fallback:    "No entendí tu consulta.",
		Suggestions: []string{"Envíos"},
	}
}

func readyProvider(t *testing.T) *faq.Provider {
	t.Helper()
	provider := faq.NewProvider(faq.StaticSource{Label: "test", Doc: testDocument()}, logger.NewNopLogger())
	provider.Start(context.Background())
	<-provider.Ready()
	return provider
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(ErrorStatuses...))
	return app
}

func newChatApp(t *testing.T, provider service.KnowledgeBaseProvider) *fiber.App {
	t.Helper()
	chatService := service.NewChatService(
		provider,
		memory.NewSessionRepository(time.Minute, time.Minute),
		nil,
		50*time.Millisecond,
		logger.NewNopLogger(),
	)

	app := newApp()
	NewChatController(chatService, nil).RegisterRoutes(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestChatControllerFlow(t *testing.T) {
	app := newChatApp(t, readyProvider(t))

	status, body := doJSON(t, app, http.MethodPost, "/api/chat/v1/sessions", nil)
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	sessionID := data["session_id"].(string)
	assert.Equal(t, "¡Hola! ¿En qué te ayudo?", data["greeting"])

	status, body = doJSON(t, app, http.MethodPost, "/api/chat/v1/sessions/"+sessionID+"/messages", dto.SendMessageRequest{Text: "cuanto tarda el envio"})
	require.Equal(t, fiber.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "matched", data["outcome"])
	assert.Equal(t, "Entre 3 y 5 días hábiles.", data["reply"])

	status, body = doJSON(t, app, http.MethodGet, "/api/chat/v1/sessions/"+sessionID+"/history", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 3)

	status, _ = doJSON(t, app, http.MethodPost, "/api/chat/v1/sessions/"+sessionID+"/close", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, http.MethodPost, "/api/chat/v1/sessions/"+sessionID+"/messages", dto.SendMessageRequest{Text: "hola"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])

	status, body = doJSON(t, app, http.MethodPost, "/api/chat/v1/sessions/"+sessionID+"/reopen", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["data"].(map[string]interface{})["is_open"])

	status, body = doJSON(t, app, http.MethodGet, "/api/chat/v1/suggestions", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{"Envíos"}, body["data"].(map[string]interface{})["suggestions"])
}

func TestChatControllerErrors(t *testing.T) {
	app := newChatApp(t, readyProvider(t))

	tests := []struct {
		name   string
		method string
		target string
		body   interface{}
		status int
	}{
		{"unknown session", http.MethodPost, "/api/chat/v1/sessions/nope/messages", dto.SendMessageRequest{Text: "hola"}, fiber.StatusNotFound},
		{"unknown history", http.MethodGet, "/api/chat/v1/sessions/nope/history", nil, fiber.StatusNotFound},
		{"text too long", http.MethodPost, "/api/chat/v1/sessions/nope/messages", dto.SendMessageRequest{Text: strings.Repeat("a", 1001)}, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestChatControllerKnowledgeBaseNotReady(t *testing.T) {
	provider := faq.NewProvider(faq.StaticSource{Doc: testDocument()}, logger.NewNopLogger())
	app := newChatApp(t, provider)

	status, body := doJSON(t, app, http.MethodPost, "/api/chat/v1/sessions", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, faq.ErrKnowledgeBaseNotReady.Error(), body["message"])
}
