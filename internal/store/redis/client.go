// Package redis implements the user, document and session stores on redis.
// Users and documents are hashes; the word-usage counter is mutated only via
// HINCRBY so concurrent finalizations from one user never lose an update.
package redis

import (
	"github.com/redis/go-redis/v9"
)

// NewClient creates a redis client from configuration (DI constructor).
func NewClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
