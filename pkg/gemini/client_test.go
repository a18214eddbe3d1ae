package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-coach/pkg/gemini"
)

type generateRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	GenerationConfig *struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

func newServer(t *testing.T, got *generateRequest) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if got.Contents[0].Parts[0].Text == "cause_400" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"code": 400, "message": "bad request", "status": "INVALID_ARGUMENT"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "Keep your " },
							{ "text": "head still." }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 4, "totalTokenCount": 11}
		}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestGenerateContent(t *testing.T) {
	var got generateRequest
	ts := newServer(t, &got)

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", BaseURL: ts.URL})
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", client.Model())

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "You are a golf coach.",
			Messages: []gemini.Content{
				{Role: "user", Text: "How do I stop lifting my head?"},
				{Role: "assistant", Text: "Which club?"},
				{Role: "user", Text: "Driver."},
			},
			Temperature: 0.5,
			MaxTokens:   256,
		})
		require.NoError(t, err)
		assert.Equal(t, "Keep your head still.", resp.Text)
		assert.Equal(t, gemini.Usage{InputTokens: 7, OutputTokens: 4, TotalTokens: 11}, resp.Usage)

		require.Len(t, got.Contents, 3)
		assert.Equal(t, "user", got.Contents[0].Role)
		assert.Equal(t, "model", got.Contents[1].Role)
		assert.Equal(t, "Which club?", got.Contents[1].Parts[0].Text)

		require.NotNil(t, got.SystemInstruction)
		assert.Equal(t, "You are a golf coach.", got.SystemInstruction.Parts[0].Text)

		require.NotNil(t, got.GenerationConfig)
		assert.InDelta(t, 0.5, got.GenerationConfig.Temperature, 1e-6)
		assert.Equal(t, 256, got.GenerationConfig.MaxOutputTokens)
	})

	t.Run("No Overrides", func(t *testing.T) {
		got = generateRequest{}
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Text: "Grip pressure?"}},
		})
		require.NoError(t, err)
		assert.Nil(t, got.SystemInstruction)
		if got.GenerationConfig != nil {
			assert.Zero(t, got.GenerationConfig.Temperature)
			assert.Zero(t, got.GenerationConfig.MaxOutputTokens)
		}
	})

	t.Run("API Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Text: "cause_400"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	require.Error(t, err)
}

func TestNew_DefaultsModel(t *testing.T) {
	client, err := gemini.New(gemini.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, client.Model())
}
