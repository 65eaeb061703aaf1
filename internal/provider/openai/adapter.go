// Package openai adapts the OpenAI chat completions API (or any
// OpenAI-compatible endpoint such as OpenRouter) to the
// domain.CompletionProvider interface using the official SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/scribekit/scribe/internal/domain"
	"github.com/scribekit/scribe/internal/observability"
)

// Provider implements domain.CompletionProvider against the OpenAI SDK.
type Provider struct {
	client openai.Client
	config Config
	name   string
}

// NewProvider creates a new OpenAI-backed provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		config: config,
		name:   "openai",
	}, nil
}

// Complete sends a blocking completion request and returns the full text.
func (p *Provider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling completion API", observability.String("model", p.config.Model))

	resp, err := p.client.Chat.Completions.New(ctx, p.toParams(systemPrompt, userPrompt))
	if err != nil {
		logger.Error("completion API call failed", observability.Error(err))
		return "", fmt.Errorf("completion API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("completion API returned no choices")
	}

	logger.Debug("completion API call succeeded",
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return resp.Choices[0].Message.Content, nil
}

// Stream sends a streaming completion request and returns the chunk
// sequence. The producing goroutine stops as soon as ctx is cancelled.
func (p *Provider) Stream(ctx context.Context, systemPrompt, userPrompt string) (<-chan domain.StreamChunk, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling streaming completion API", observability.String("model", p.config.Model))

	stream := p.client.Chat.Completions.NewStreaming(ctx, p.toParams(systemPrompt, userPrompt))

	chunks := make(chan domain.StreamChunk)

	go func() {
		defer close(chunks)
		defer logger.Debug("completion stream closed")

		for stream.Next() {
			event := stream.Current()
			if len(event.Choices) == 0 {
				continue
			}

			delta := event.Choices[0].Delta.Content
			done := event.Choices[0].FinishReason != ""

			select {
			case chunks <- domain.StreamChunk{Delta: delta, Done: done}:
			case <-ctx.Done():
				return
			}

			if done {
				return
			}
		}

		if err := stream.Err(); err != nil && !errors.Is(err, io.EOF) {
			select {
			case chunks <- domain.StreamChunk{Err: fmt.Errorf("completion stream error: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return chunks, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// toParams builds SDK parameters from the prompt pair and fixed config.
func (p *Provider) toParams(systemPrompt, userPrompt string) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	}

	if p.config.Temperature > 0 {
		params.Temperature = openai.Float(p.config.Temperature)
	}

	return params
}
