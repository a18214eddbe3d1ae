package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-coach/pkg/openai"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestGenerateContent(t *testing.T) {
	var got chatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if got.Messages[len(got.Messages)-1].Content == "cause_500" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-3.5-turbo",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "Aim small, miss small."}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)
	assert.Equal(t, openai.DefaultModel, client.Model())

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			SystemInstruction: "You are a caddie.",
			Messages:          []openai.Message{{Role: "user", Content: "Any tips for course management?"}},
			Temperature:       0.9,
		})
		require.NoError(t, err)
		assert.Equal(t, "Aim small, miss small.", resp.Content)
		assert.Equal(t, 17, resp.Usage.TotalTokens)

		assert.Equal(t, openai.DefaultModel, got.Model)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, "user", got.Messages[1].Role)
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "cause_500"}},
		})
		require.Error(t, err)
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := openai.New(openai.Config{Model: "gpt-4o-mini"})
	require.Error(t, err)
}
