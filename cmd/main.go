package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/scribekit/scribe/internal/config"
	"github.com/scribekit/scribe/internal/domain"
	scribehttp "github.com/scribekit/scribe/internal/http"
	"github.com/scribekit/scribe/internal/http/middleware"
	"github.com/scribekit/scribe/internal/observability"
	"github.com/scribekit/scribe/internal/provider/echo"
	"github.com/scribekit/scribe/internal/provider/openai"
	redisstore "github.com/scribekit/scribe/internal/store/redis"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *scribehttp.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Storage
	if err := container.Provide(redisstore.NewClient); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}
	if err := container.Provide(func(client *redis.Client) domain.UserStore {
		return redisstore.NewUserStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide user store: %v", err)
	}
	if err := container.Provide(func(client *redis.Client) domain.DocumentStore {
		return redisstore.NewDocumentStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide document store: %v", err)
	}
	if err := container.Provide(func(client *redis.Client) domain.SessionResolver {
		return redisstore.NewSessionStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide session store: %v", err)
	}

	// Completion backend. Without an API key the echo provider substitutes
	// so local development works offline.
	if err := container.Provide(func(cfg *openai.Config, logger *zap.Logger) (domain.CompletionProvider, error) {
		if cfg.APIKey == "" {
			logger.Warn("no API key configured, using echo provider")
			return echo.NewProvider(), nil
		}
		return openai.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide completion provider: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(users domain.UserStore, cfg *config.QuotaConfig) *domain.UsageGuard {
		return domain.NewUsageGuard(users, domain.QuotaPolicy{
			Floor:      cfg.Floor,
			TrialLimit: cfg.TrialLimit,
		})
	}); err != nil {
		log.Fatalf("Failed to provide usage guard: %v", err)
	}
	if err := container.Provide(domain.NewGenerationService); err != nil {
		log.Fatalf("Failed to provide generation service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware: %v", err)
	}
	if err := container.Provide(scribehttp.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(scribehttp.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
