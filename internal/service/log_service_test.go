package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"faq-chat-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogService(t *testing.T) {
	l := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))
	l.Info("KB_RELOAD", "Knowledge base reloaded", map[string]interface{}{"entries": 12})
	l.Error("CHAT", "Failed to publish FAQ_MATCHED event", map[string]interface{}{"error": "nats down"})
	require.NoError(t, l.Sync())

	svc := NewLogService(l)

	logs, err := svc.GetSystemLogs(context.Background(), 0, 0, "")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "CHAT", logs[0].Module)
	assert.WithinDuration(t, time.Now(), logs[0].CreatedAt, time.Minute)

	detail, err := svc.GetLogDetail(context.Background(), logs[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "Knowledge base reloaded", detail.Message)
	assert.EqualValues(t, 12, detail.Details["entries"])

	_, err = svc.GetLogDetail(context.Background(), "missing")
	assert.Error(t, err)
}

func TestParseLogTime(t *testing.T) {
	ts := parseLogTime("2025-04-01T09:15:00.250-0300")
	assert.Equal(t, time.Date(2025, 4, 1, 12, 15, 0, 250_000_000, time.UTC), ts.UTC())
	assert.True(t, parseLogTime("garbage").IsZero())
}
