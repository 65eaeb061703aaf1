package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/scribekit/scribe/internal/domain"
	"github.com/scribekit/scribe/internal/observability"
)

// Key layout:
//
//	user:<id>           hash  id, email, words_used, word_limit, plan, brand_voice
//	user:email:<email>  string -> id
const (
	userKeyPrefix      = "user:"
	userEmailKeyPrefix = "user:email:"
)

// UserStore implements domain.UserStore on redis hashes.
type UserStore struct {
	client *redis.Client
}

// NewUserStore creates a redis-backed user store.
func NewUserStore(client *redis.Client) *UserStore {
	return &UserStore{client: client}
}

// GetByEmail loads a user record through the email index.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, err := s.client.Get(ctx, userEmailKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user email: %w", err)
	}

	fields, err := s.client.HGetAll(ctx, userKeyPrefix+id).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(fields) == 0 {
		// Dangling email index.
		observability.FromContext(ctx).Warn("email index points at missing user record",
			observability.String("user_id", id))
		return nil, domain.ErrUserNotFound
	}

	return parseUser(id, fields), nil
}

// RaiseQuota sets a new word limit and plan on the record.
func (s *UserStore) RaiseQuota(ctx context.Context, userID string, limit int, plan domain.Plan) error {
	err := s.client.HSet(ctx, userKeyPrefix+userID,
		"word_limit", limit,
		"plan", string(plan),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to raise quota: %w", err)
	}
	return nil
}

// IncrementUsage atomically adds words to the usage counter. HINCRBY is the
// single write point for this field, so concurrent generations from the same
// user cannot lose updates.
func (s *UserStore) IncrementUsage(ctx context.Context, userID string, words int) error {
	err := s.client.HIncrBy(ctx, userKeyPrefix+userID, "words_used", int64(words)).Err()
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	return nil
}

// UpdateBrandVoice replaces the user's stored writing sample.
func (s *UserStore) UpdateBrandVoice(ctx context.Context, userID string, sample string) error {
	err := s.client.HSet(ctx, userKeyPrefix+userID, "brand_voice", sample).Err()
	if err != nil {
		return fmt.Errorf("failed to update brand voice: %w", err)
	}
	return nil
}

// parseUser converts hash fields into a user record. Malformed numeric
// fields parse as zero, which the quota self-heal then repairs.
func parseUser(id string, fields map[string]string) *domain.User {
	wordsUsed, _ := strconv.Atoi(fields["words_used"])
	wordLimit, _ := strconv.Atoi(fields["word_limit"])

	plan := domain.Plan(fields["plan"])
	if plan == "" {
		plan = domain.PlanNone
	}

	return &domain.User{
		ID:         id,
		Email:      fields["email"],
		WordsUsed:  wordsUsed,
		WordLimit:  wordLimit,
		Plan:       plan,
		BrandVoice: fields["brand_voice"],
	}
}
