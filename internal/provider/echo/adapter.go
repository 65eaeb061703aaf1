// Package echo provides a deterministic in-memory completion provider that
// echoes the user prompt back. It stands in for the real backend in local
// development (no API key configured) and in tests.
package echo

import (
	"context"
	"strings"
	"time"

	"github.com/scribekit/scribe/internal/domain"
	"github.com/scribekit/scribe/internal/observability"
)

const (
	providerName = "echo"
	chunkDelay   = 10 * time.Millisecond
)

// Provider implements domain.CompletionProvider without external calls.
type Provider struct {
	name string
}

// NewProvider creates a new echo provider. No configuration is required as
// this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{name: providerName}
}

// Complete returns the user prompt unchanged.
func (p *Provider) Complete(ctx context.Context, _, userPrompt string) (string, error) {
	observability.FromContext(ctx).Debug("echoing blocking request")
	return userPrompt, nil
}

// Stream returns the user prompt word by word with a small delay between
// chunks, mimicking backend production pacing.
func (p *Provider) Stream(ctx context.Context, _, userPrompt string) (<-chan domain.StreamChunk, error) {
	observability.FromContext(ctx).Debug("echoing streaming request")

	chunks := make(chan domain.StreamChunk)

	go func() {
		defer close(chunks)

		words := strings.Fields(userPrompt)
		for i, word := range words {
			delta := word
			if i < len(words)-1 {
				delta += " "
			}

			select {
			case chunks <- domain.StreamChunk{Delta: delta}:
				time.Sleep(chunkDelay)
			case <-ctx.Done():
				return
			}
		}

		select {
		case chunks <- domain.StreamChunk{Done: true}:
		case <-ctx.Done():
		}
	}()

	return chunks, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}
