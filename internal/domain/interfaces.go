package domain

import "context"

// CompletionProvider abstracts the text-generation backend. Model,
// temperature and endpoint are fixed configuration on the implementation,
// never request-controlled.
type CompletionProvider interface {
	// Complete sends a request and blocks for the full response text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Stream sends a request and returns a finite, consume-once sequence of
	// chunks. Implementations must stop producing when ctx is cancelled.
	Stream(ctx context.Context, systemPrompt, userPrompt string) (<-chan StreamChunk, error)

	// Name returns the provider identifier.
	Name() string
}

// UserStore is the persistence boundary for user records.
type UserStore interface {
	// GetByEmail loads a user record, or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// RaiseQuota sets a new word limit and plan on the record.
	RaiseQuota(ctx context.Context, userID string, limit int, plan Plan) error

	// IncrementUsage atomically adds words to the user's usage counter.
	IncrementUsage(ctx context.Context, userID string, words int) error

	// UpdateBrandVoice replaces the user's stored writing sample.
	UpdateBrandVoice(ctx context.Context, userID string, sample string) error
}

// DocumentStore is the persistence boundary for documents. Content updates
// are full overwrites; concurrent writers are last-writer-wins.
type DocumentStore interface {
	UpdateContent(ctx context.Context, documentID string, content string) error
}

// SessionResolver maps a session token to the authenticated user's email.
// An unknown or expired token yields ErrUnauthenticated.
type SessionResolver interface {
	ResolveEmail(ctx context.Context, token string) (string, error)
}
