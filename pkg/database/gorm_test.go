package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"silent", logger.Silent},
		{"ERROR", logger.Error},
		{"info", logger.Info},
		{"warn", logger.Warn},
		{"", logger.Warn},
		{"verbose", logger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("postgres://localhost/faq")
	assert.Equal(t, "postgres://localhost/faq", opts.DSN)
	assert.Equal(t, time.Hour, opts.ConnMaxLifetime)
	assert.Greater(t, opts.MaxOpenConns, opts.MaxIdleConns)
}
