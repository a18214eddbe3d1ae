package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-coach/config"
	"golf-coach/internal/coach"
	"golf-coach/internal/middleware"
	"golf-coach/pkg/log"
)

type mockUseCase struct {
	answerOut coach.AnswerOutput
	answerErr error
	routeOut  coach.RouteOutput
	routeErr  error
	gotText   string
}

func (m *mockUseCase) Answer(ctx context.Context, input coach.AnswerInput) (coach.AnswerOutput, error) {
	m.gotText = input.Text
	if m.answerErr == nil && strings.TrimSpace(input.Text) == "" {
		return coach.AnswerOutput{}, coach.ErrEmptyText
	}
	return m.answerOut, m.answerErr
}

func (m *mockUseCase) Route(ctx context.Context, input coach.RouteInput) (coach.RouteOutput, error) {
	m.gotText = input.Text
	return m.routeOut, m.routeErr
}

func (m *mockUseCase) Destinations(ctx context.Context) coach.DestinationsOutput {
	return coach.DestinationsOutput{
		Destinations: []coach.Destination{{Name: "putting", Description: "Good for answering questions putting in golf"}},
		Default:      "DEFAULT",
	}
}

func newTestEngine(uc coach.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{})
	h := New(log.NewNop(), uc)

	r := gin.New()
	RegisterLegacyRoutes(r, h, mw)
	RegisterRoutes(r.Group("/api/v1/coach"), h, mw)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestProcess_Success(t *testing.T) {
	uc := &mockUseCase{answerOut: coach.AnswerOutput{Text: "Keep your eyes over the ball.", Destination: "putting"}}
	r := newTestEngine(uc)

	for _, path := range []string{"/process/", "/process"} {
		w := do(r, http.MethodPost, path, `{"text": "How do I aim putts?"}`)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"processed_text": "Keep your eyes over the ball."}`, w.Body.String())
		assert.Equal(t, "How do I aim putts?", uc.gotText)
	}
}

func TestProcess_GatewayFailure(t *testing.T) {
	uc := &mockUseCase{answerErr: errors.New("routing: provider openai: 401 invalid api key sk-secret")}
	r := newTestEngine(uc)

	w := do(r, http.MethodPost, "/process/", `{"text": "hi"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, msgInternal, body["detail"])
	assert.NotContains(t, w.Body.String(), "sk-secret")
}

func TestProcess_BadBody(t *testing.T) {
	r := newTestEngine(&mockUseCase{})

	for _, body := range []string{`not json`, `{}`, `{"text": 42}`} {
		w := do(r, http.MethodPost, "/process/", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.NotEmpty(t, decode(t, w)["detail"], body)
	}
}

func TestProcess_EmptyText(t *testing.T) {
	r := newTestEngine(&mockUseCase{})

	w := do(r, http.MethodPost, "/process/", `{"text": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnswer(t *testing.T) {
	uc := &mockUseCase{answerOut: coach.AnswerOutput{
		Text:        "Open the face.",
		Destination: "short_game",
		NextInput:   "How do I hit a flop shot?",
	}}
	r := newTestEngine(uc)

	w := do(r, http.MethodPost, "/api/v1/coach/answer", `{"text": "flop shot?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"error_code": 0,
		"message": "Success",
		"data": {"answer": "Open the face.", "destination": "short_game", "next_input": "How do I hit a flop shot?"}
	}`, w.Body.String())
}

func TestAnswer_Errors(t *testing.T) {
	w := do(newTestEngine(&mockUseCase{}), http.MethodPost, "/api/v1/coach/answer", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["error_code"])

	w = do(newTestEngine(&mockUseCase{answerErr: errors.New("boom")}), http.MethodPost, "/api/v1/coach/answer", `{"text": "x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRoute(t *testing.T) {
	uc := &mockUseCase{routeOut: coach.RouteOutput{Destination: "DEFAULT", NextInput: "hello", Source: "fallback"}}
	r := newTestEngine(uc)

	w := do(r, http.MethodPost, "/api/v1/coach/route", `{"text": "hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "DEFAULT", data["destination"])
	assert.Equal(t, "fallback", data["source"])
}

func TestDestinations(t *testing.T) {
	w := do(newTestEngine(&mockUseCase{}), http.MethodGet, "/api/v1/coach/destinations", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "DEFAULT", data["default"])
	assert.Len(t, data["destinations"], 1)
}
