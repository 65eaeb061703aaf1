package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/scribekit/scribe/internal/observability"
)

// GenerationService orchestrates the generation pipeline: user lookup, quota
// admission, prompt construction, backend invocation and, for streaming
// kinds, end-of-stream finalization.
type GenerationService struct {
	users     UserStore
	documents DocumentStore
	provider  CompletionProvider
	guard     *UsageGuard
}

// NewGenerationService creates a generation service (DI constructor).
func NewGenerationService(
	users UserStore,
	documents DocumentStore,
	provider CompletionProvider,
	guard *UsageGuard,
) *GenerationService {
	return &GenerationService{
		users:     users,
		documents: documents,
		provider:  provider,
		guard:     guard,
	}
}

// GenerateBlocking runs an array-shaped generation (titles, outlines) and
// returns the sanitized array literal. Blocking generations are not charged
// against the word quota.
func (s *GenerationService) GenerateBlocking(
	ctx context.Context,
	email string,
	req *GenerationRequest,
) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}
	if !req.Kind.IsBlocking() {
		return "", fmt.Errorf("kind %s is not a blocking kind", req.Kind)
	}

	user, err := s.admit(ctx, email, req)
	if err != nil {
		return "", err
	}

	systemPrompt, userPrompt := BuildPrompts(req, user.BrandVoice)

	raw, err := s.provider.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	return SanitizeArray(raw), nil
}

// GenerateStream runs a prose generation and returns the relayed chunk
// sequence. Chunks are forwarded in backend production order with no
// whole-response buffering; the full text is accumulated alongside and, on
// clean exhaustion only, usage is charged and the target document (when any)
// is overwritten with the complete text.
func (s *GenerationService) GenerateStream(
	ctx context.Context,
	email string,
	req *GenerationRequest,
) (<-chan StreamChunk, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Kind.IsBlocking() {
		return nil, fmt.Errorf("kind %s is not a streaming kind", req.Kind)
	}

	user, err := s.admit(ctx, email, req)
	if err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := BuildPrompts(req, user.BrandVoice)

	upstream, err := s.provider.Stream(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to stream from provider: %w", err)
	}

	return s.relay(ctx, user, req.DocumentID, upstream), nil
}

// admit resolves the user record and enforces the quota. Both happen before
// any generation work so denial has no side effects beyond the self-heal.
func (s *GenerationService) admit(ctx context.Context, email string, req *GenerationRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Admit(ctx, user); err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)
	logger.Debug("generation admitted",
		observability.String("kind", string(req.Kind)),
		observability.Int("words_used", user.WordsUsed),
		observability.Int("word_limit", user.WordLimit),
	)

	return user, nil
}
