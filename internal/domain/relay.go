package domain

import (
	"context"
	"strings"

	"github.com/scribekit/scribe/internal/observability"
)

// relay forwards upstream chunks to the caller while accumulating the full
// text. Finalization (usage charge + document overwrite) is attached only to
// clean exhaustion of the upstream sequence: a caller abort or an upstream
// fault stops forwarding and skips finalization, because charging quota for
// — or persisting — a partial text would be wrong.
func (s *GenerationService) relay(
	ctx context.Context,
	user *User,
	documentID string,
	upstream <-chan StreamChunk,
) <-chan StreamChunk {
	out := make(chan StreamChunk)

	go func() {
		defer close(out)

		var full strings.Builder
		logger := observability.FromContext(ctx)

		for chunk := range upstream {
			// Caller gone: stop forwarding, discard the remainder.
			select {
			case <-ctx.Done():
				logger.Info("stream aborted by caller, skipping finalization")
				return
			default:
			}

			if chunk.Err != nil {
				logger.Error("upstream fault mid-stream, skipping finalization",
					observability.Error(chunk.Err))
				select {
				case out <- chunk:
				case <-ctx.Done():
				}
				return
			}

			full.WriteString(chunk.Delta)

			select {
			case out <- chunk:
			case <-ctx.Done():
				logger.Info("stream aborted by caller, skipping finalization")
				return
			}

			if chunk.Done {
				s.finalize(ctx, user, documentID, full.String())
				return
			}
		}
		// Upstream closed without a Done chunk: not clean exhaustion, so the
		// accumulated text is treated as incomplete and never finalized.
		logger.Warn("upstream closed without completion, skipping finalization")
	}()

	return out
}

// finalize charges the word quota and persists the complete text. Runs under
// a cancellation-free context: once the final chunk has been delivered, a
// client disconnect must not leave usage and document state half-updated.
func (s *GenerationService) finalize(ctx context.Context, user *User, documentID, fullText string) {
	ctx = context.WithoutCancel(ctx)
	logger := observability.FromContext(ctx)

	words, err := s.guard.Finalize(ctx, user, fullText)
	if err != nil {
		logger.Error("usage finalization failed", observability.Error(err))
	} else {
		logger.Info("generation finalized", observability.Int("words", words))
	}

	if documentID == "" {
		return
	}

	if err := s.documents.UpdateContent(ctx, documentID, fullText); err != nil {
		logger.Error("document overwrite failed",
			observability.String("document_id", documentID),
			observability.Error(err))
	}
}
