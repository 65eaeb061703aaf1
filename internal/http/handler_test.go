package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scribekit/scribe/internal/domain"
	scribehttp "github.com/scribekit/scribe/internal/http"
	"github.com/scribekit/scribe/internal/mocks"
)

type handlerMocks struct {
	users     *mocks.MockUserStore
	documents *mocks.MockDocumentStore
	provider  *mocks.MockCompletionProvider
	sessions  *mocks.MockSessionResolver
}

func newTestHandler(t *testing.T) (*scribehttp.Handler, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		users:     mocks.NewMockUserStore(t),
		documents: mocks.NewMockDocumentStore(t),
		provider:  mocks.NewMockCompletionProvider(t),
		sessions:  mocks.NewMockSessionResolver(t),
	}

	guard := domain.NewUsageGuard(m.users, domain.QuotaPolicy{Floor: 1000, TrialLimit: 25000})
	service := domain.NewGenerationService(m.users, m.documents, m.provider, guard)
	handler := scribehttp.NewHandler(service, m.users, m.sessions)

	return handler, m
}

func generateRequest(t *testing.T, token string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func trialUser() *domain.User {
	return &domain.User{ID: "u1", Email: "a@b.c", WordsUsed: 100, WordLimit: 25000, Plan: domain.PlanTrial}
}

func TestHandleGenerate_NoSession(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := generateRequest(t, "", map[string]string{"type": "titles", "tone": "witty", "topic": "bees"})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleGenerate_UnknownToken(t *testing.T) {
	handler, m := newTestHandler(t)

	m.sessions.EXPECT().
		ResolveEmail(mock.Anything, "bad-token").
		Return("", domain.ErrUnauthenticated)

	req := generateRequest(t, "bad-token", map[string]string{"type": "titles", "tone": "witty", "topic": "bees"})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleGenerate_UserNotFound(t *testing.T) {
	handler, m := newTestHandler(t)

	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("ghost@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "ghost@b.c").Return(nil, domain.ErrUserNotFound)

	req := generateRequest(t, "tok", map[string]string{"type": "titles", "tone": "witty", "topic": "bees"})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGenerate_QuotaExceeded(t *testing.T) {
	handler, m := newTestHandler(t)

	exhausted := &domain.User{ID: "u1", WordsUsed: 25000, WordLimit: 25000, Plan: domain.PlanTrial}
	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(exhausted, nil)

	req := generateRequest(t, "tok", map[string]string{"type": "titles", "tone": "witty", "topic": "bees"})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "upgrade")
	// No provider expectations: denial happens before any backend call.
}

func TestHandleGenerate_UnknownKind(t *testing.T) {
	handler, m := newTestHandler(t)

	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)

	req := generateRequest(t, "tok", map[string]string{"type": "poetry", "tone": "witty"})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerate_MethodNotAllowed(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/generate", nil)
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleGenerate_BlockingReturnsSanitizedJSON(t *testing.T) {
	handler, m := newTestHandler(t)

	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(trialUser(), nil)
	m.provider.EXPECT().
		Complete(mock.Anything, mock.Anything, mock.Anything).
		Return("```json\n[\"Title A\",\"Title B\"]\n```", nil)

	req := generateRequest(t, "tok", map[string]string{"type": "titles", "tone": "witty", "topic": "bees"})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, `["Title A","Title B"]`, body["result"])
}

func TestHandleGenerate_StreamingWritesIncrementalBody(t *testing.T) {
	handler, m := newTestHandler(t)

	upstream := make(chan domain.StreamChunk, 4)
	upstream <- domain.StreamChunk{Delta: "Hello "}
	upstream <- domain.StreamChunk{Delta: "streaming "}
	upstream <- domain.StreamChunk{Delta: "world"}
	upstream <- domain.StreamChunk{Done: true}
	close(upstream)

	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(trialUser(), nil)
	m.provider.EXPECT().
		Stream(mock.Anything, mock.Anything, mock.Anything).
		Return((<-chan domain.StreamChunk)(upstream), nil)
	m.users.EXPECT().IncrementUsage(mock.Anything, "u1", 3).Return(nil)
	m.documents.EXPECT().UpdateContent(mock.Anything, "doc-1", "Hello streaming world").Return(nil)

	req := generateRequest(t, "tok", map[string]any{
		"type":       "article",
		"tone":       "casual",
		"title":      "T",
		"outline":    []string{"A", "B"},
		"documentId": "doc-1",
	})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	require.True(t, w.Flushed)
	require.Equal(t, "Hello streaming world", w.Body.String())
}

func TestHandleGenerate_BackendFaultBeforeOutput(t *testing.T) {
	handler, m := newTestHandler(t)

	upstream := make(chan domain.StreamChunk, 1)
	upstream <- domain.StreamChunk{Err: errors.New("backend hiccup")}
	close(upstream)

	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(trialUser(), nil)
	m.provider.EXPECT().
		Stream(mock.Anything, mock.Anything, mock.Anything).
		Return((<-chan domain.StreamChunk)(upstream), nil)

	req := generateRequest(t, "tok", map[string]any{
		"type":  "article",
		"tone":  "casual",
		"title": "T",
	})
	w := httptest.NewRecorder()

	handler.HandleGenerate(w, req)

	// No delta was ever written, so the fault surfaces as a status code.
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "backend hiccup")
}

func TestHandleVoice_Get(t *testing.T) {
	handler, m := newTestHandler(t)

	user := trialUser()
	user.BrandVoice = "Short. Punchy."
	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/voice", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	handler.HandleVoice(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, "Short. Punchy.", body["brandVoice"])
}

func TestHandleVoice_PostUpdatesSample(t *testing.T) {
	handler, m := newTestHandler(t)

	m.sessions.EXPECT().ResolveEmail(mock.Anything, "tok").Return("a@b.c", nil)
	m.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(trialUser(), nil)
	m.users.EXPECT().UpdateBrandVoice(mock.Anything, "u1", "New voice sample.").Return(nil)

	payload, _ := json.Marshal(map[string]string{"brandVoice": "New voice sample."})
	req := httptest.NewRequest(http.MethodPost, "/v1/voice", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()

	handler.HandleVoice(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, "New voice sample.", body["brandVoice"])
}

func TestHandleHealth(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "healthy")
}
