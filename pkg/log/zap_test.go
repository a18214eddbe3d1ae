package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"golf-coach/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, log.RequestIDFromContext(ctx))

	ctx = log.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", log.RequestIDFromContext(ctx))
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "verbose", Mode: "development", Encoding: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			assert.NotNil(t, l)

			ctx := log.WithRequestID(context.Background(), "req-1")
			assert.NotPanics(t, func() {
				l.Debugf(ctx, "debug %d", 1)
				l.Info(ctx, "info")
				l.Warnf(ctx, "warn %s", "x")
			})
		})
	}
}
