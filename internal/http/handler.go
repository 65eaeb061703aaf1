package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/scribekit/scribe/internal/domain"
	"github.com/scribekit/scribe/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	generator *domain.GenerationService
	users     domain.UserStore
	sessions  domain.SessionResolver
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	generator *domain.GenerationService,
	users domain.UserStore,
	sessions domain.SessionResolver,
) *Handler {
	return &Handler{
		generator: generator,
		users:     users,
		sessions:  sessions,
	}
}

// HandleGenerate processes generation requests. Array-shaped kinds respond
// with a single JSON payload; prose kinds respond with an incrementally
// written text body where end-of-body signals completion.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ctx = observability.WithUserEmail(ctx, email)

	var req domain.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if _, err := domain.ParseKind(string(req.Kind)); err != nil {
		writeError(w, err)
		return
	}
	ctx = observability.WithKind(ctx, string(req.Kind))

	logger := observability.FromContext(ctx)
	logger.Info("generation request received",
		zap.String("kind", string(req.Kind)),
		zap.Bool("blocking", req.Kind.IsBlocking()),
		zap.Bool("has_document", req.DocumentID != ""),
	)

	if req.Kind.IsBlocking() {
		h.handleBlocking(ctx, w, email, &req)
		return
	}

	h.handleStream(ctx, w, email, &req)
}

// handleBlocking serves the array-shaped kinds as one JSON response.
func (h *Handler) handleBlocking(
	ctx context.Context,
	w http.ResponseWriter,
	email string,
	req *domain.GenerationRequest,
) {
	logger := observability.FromContext(ctx)

	result, err := h.generator.GenerateBlocking(ctx, email, req)
	if err != nil {
		logger.Error("blocking generation failed", zap.Error(err))
		writeError(w, err)
		return
	}

	logger.Info("blocking generation succeeded")

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"result": result}); encodeErr != nil {
		logger.Error("failed to encode response", zap.Error(encodeErr))
	}
}

// handleStream serves prose kinds as an incrementally flushed text body.
// Once the first chunk is written the status is committed; a later fault can
// only terminate the body early.
func (h *Handler) handleStream(
	ctx context.Context,
	w http.ResponseWriter,
	email string,
	req *domain.GenerationRequest,
) {
	logger := observability.FromContext(ctx)

	chunks, err := h.generator.GenerateStream(ctx, email, req)
	if err != nil {
		logger.Error("stream setup failed", zap.Error(err))
		writeError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	written := false
	for chunk := range chunks {
		if chunk.Err != nil {
			logger.Error("stream chunk error", zap.Error(chunk.Err))
			if !written {
				writeError(w, chunk.Err)
			}
			return
		}

		if chunk.Delta != "" {
			if _, writeErr := fmt.Fprint(w, chunk.Delta); writeErr != nil {
				logger.Warn("caller went away mid-stream", zap.Error(writeErr))
				return
			}
			written = true
			flusher.Flush()
		}

		if chunk.Done {
			logger.Info("stream completed")
			// Keep ranging until the relay closes the channel: it closes
			// only after finalization, so returning here early could race
			// the usage charge and document write.
		}
	}
}

// HandleVoice reads (GET) or replaces (POST) the user's brand-voice sample.
func (h *Handler) HandleVoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ctx = observability.WithUserEmail(ctx, email)

	user, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		writeError(w, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		// Fall through to the response below.
	case http.MethodPost:
		var body struct {
			BrandVoice string `json:"brandVoice"`
		}
		if decodeErr := json.NewDecoder(r.Body).Decode(&body); decodeErr != nil {
			http.Error(w, fmt.Sprintf("invalid request body: %v", decodeErr), http.StatusBadRequest)
			return
		}
		if updateErr := h.users.UpdateBrandVoice(ctx, user.ID, body.BrandVoice); updateErr != nil {
			observability.FromContext(ctx).Error("brand voice update failed", zap.Error(updateErr))
			writeError(w, updateErr)
			return
		}
		user.BrandVoice = body.BrandVoice
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"brandVoice": user.BrandVoice}); encodeErr != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(encodeErr))
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// authenticate extracts the bearer token and resolves it to an email.
func (h *Handler) authenticate(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return "", domain.ErrUnauthenticated
	}

	return h.sessions.ResolveEmail(r.Context(), token)
}

// writeError maps domain errors onto HTTP status codes and bodies.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrQuotaExceeded):
		http.Error(w, "Word limit reached. Please upgrade.", http.StatusForbidden)
	case errors.Is(err, domain.ErrUnknownKind), errors.Is(err, domain.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
