package llmprovider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-coach/config"
	"golf-coach/pkg/log"
)

func TestInitializeProviders_SortsAndSkips(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "anthropic", Enabled: true, Priority: 3, APIKey: "a", Model: "claude-3-5-haiku-latest"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-3.5-turbo"},
			{Name: "gemini", Enabled: false, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "deepseek", Enabled: true, Priority: 4, Model: "deepseek-chat"},
			{Name: "mystery", Enabled: true, Priority: 5, APIKey: "m", Model: "m"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, ProviderOpenAI, providers[0].Name())
	assert.Equal(t, "gpt-3.5-turbo", providers[0].Model())
	assert.Equal(t, ProviderAnthropic, providers[1].Name())
}

func TestInitializeProviders_NoneUsable(t *testing.T) {
	_, err := InitializeProviders(context.Background(), &config.LLMConfig{}, log.NewNop())
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"}},
	}, log.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	_, err = InitializeProviders(context.Background(), nil, log.NewNop())
	assert.Error(t, err)
}

func TestCreateProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ProviderConfig
		wantName string
		wantErr  error
	}{
		{name: "openai", cfg: config.ProviderConfig{Name: "openai", APIKey: "k", Model: "gpt-3.5-turbo"}, wantName: ProviderOpenAI},
		{name: "deepseek", cfg: config.ProviderConfig{Name: "deepseek", APIKey: "k", Model: "deepseek-chat"}, wantName: ProviderDeepSeek},
		{name: "alibaba", cfg: config.ProviderConfig{Name: "alibaba", APIKey: "k", Model: "qwen-plus"}, wantName: ProviderAlibaba},
		{name: "gemini", cfg: config.ProviderConfig{Name: "gemini", APIKey: "k", Model: "gemini-2.5-flash"}, wantName: ProviderGemini},
		{name: "claude alias", cfg: config.ProviderConfig{Name: "claude", APIKey: "k", Model: "claude-3-5-haiku-latest"}, wantName: ProviderAnthropic},
		{name: "unknown", cfg: config.ProviderConfig{Name: "mystery", APIKey: "k", Model: "m"}, wantErr: ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := createProvider(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.cfg.Model, p.Model())
		})
	}
}

func TestCreateProvider_BadTimeout(t *testing.T) {
	_, err := createProvider(config.ProviderConfig{Name: "openai", APIKey: "k", Model: "m", Timeout: "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestManagerConfig(t *testing.T) {
	cfg, err := ManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   0,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "30s",
	})
	require.NoError(t, err)

	assert.True(t, cfg.FallbackEnabled)
	assert.Equal(t, 1, cfg.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxTotalTimeout)

	_, err = ManagerConfig(&config.LLMConfig{RetryDelay: "later"})
	assert.Error(t, err)
}
