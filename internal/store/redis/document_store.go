package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scribekit/scribe/internal/domain"
)

const documentKeyPrefix = "document:"

// DocumentStore implements domain.DocumentStore on redis hashes.
type DocumentStore struct {
	client *redis.Client
}

// NewDocumentStore creates a redis-backed document store.
func NewDocumentStore(client *redis.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// UpdateContent overwrites the stored content of an existing document.
// Last-writer-wins; there is no merge or conflict detection.
func (s *DocumentStore) UpdateContent(ctx context.Context, documentID string, content string) error {
	key := documentKeyPrefix + documentID

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check document: %w", err)
	}
	if exists == 0 {
		return domain.ErrDocumentNotFound
	}

	err = s.client.HSet(ctx, key,
		"content", content,
		"updated_at", time.Now().Unix(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}
