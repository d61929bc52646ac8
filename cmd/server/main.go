package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"schemesathi/internal/analytics"
	"schemesathi/internal/catalog"
	"schemesathi/internal/chatbot"
	chatbotHandler "schemesathi/internal/chatbot/handler"
	chatbotMetrics "schemesathi/internal/chatbot/metrics"
	"schemesathi/internal/eligibility"
	eligibilityHandler "schemesathi/internal/eligibility/handler"
	eligibilityMetrics "schemesathi/internal/eligibility/metrics"
	"schemesathi/internal/platform/config"
	"schemesathi/internal/platform/httpserver"
	"schemesathi/internal/platform/logger"
	platformredis "schemesathi/internal/platform/redis"
	"schemesathi/internal/profile"
	profileHandler "schemesathi/internal/profile/handler"
	"schemesathi/internal/saved"
	savedHandler "schemesathi/internal/saved/handler"
	httptransport "schemesathi/internal/transport/http"
	"schemesathi/pkg/platform/middleware/auth"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages. Redis, Postgres, and Kafka
// are all optional: the server degrades to in-memory stores and a no-op
// analytics publisher when they are not configured.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	catalogStore, err := buildCatalog(cfg)
	if err != nil {
		log.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "schemes", len(catalogStore.All(ctx)), "path", cfg.CatalogPath)

	healthChecks := map[string]httptransport.HealthChecker{}

	// Profile store: Redis when configured, memory otherwise.
	var profileStore profile.Store = profile.NewInMemoryStore()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		profileStore = profile.NewRedisStore(redisClient)
		healthChecks["redis"] = func() error { return redisClient.Health(ctx) }
		log.Info("profile store backed by redis")
	}

	// Bookmark store: Postgres when configured, memory otherwise.
	var savedStore saved.Store = saved.NewInMemoryStore()
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}
		pgStore := saved.NewPostgres(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema setup failed", "error", err)
			os.Exit(1)
		}
		savedStore = pgStore
		healthChecks["postgres"] = func() error { return db.PingContext(ctx) }
		log.Info("bookmark store backed by postgres")
	}

	// Analytics: Kafka when configured, disabled otherwise. Publishing is
	// fail-open either way.
	var publisher *analytics.Publisher
	kafkaSink, err := analytics.NewKafkaSink(ctx, cfg.Kafka)
	if err != nil {
		log.Error("kafka connection failed", "error", err)
		os.Exit(1)
	}
	if kafkaSink != nil {
		defer kafkaSink.Close()
		publisher = analytics.NewPublisher(kafkaSink, log)
		log.Info("analytics publishing to kafka", "topic", cfg.Kafka.Topic)
	}

	eligibilitySvc := eligibility.NewService(catalogStore, log, eligibilityMetrics.New(), publisher)
	profileSvc := profile.NewService(profileStore, log)
	savedSvc := saved.NewService(savedStore, catalogStore, log, publisher)

	responder := chatbot.NewResponder(catalogStore, eligibilitySvc)
	chatbotSvc := chatbot.NewService(responder, log, chatbotMetrics.New(), publisher)

	validator := auth.NewHS256Validator(cfg.JWTSigningKey)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:             log,
		TokenValidator:     validator,
		SupportedLanguages: cfg.SupportedLanguages,
		Eligibility:        eligibilityHandler.New(eligibilitySvc, log),
		Chat:               chatbotHandler.New(chatbotSvc, profileSvc, log),
		Profile:            profileHandler.New(profileSvc, log),
		Saved:              savedHandler.New(savedSvc, log),
		HealthChecks:       healthChecks,
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting schemesathi", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// buildCatalog loads the scheme catalog from the configured file, falling
// back to the embedded seed catalog.
func buildCatalog(cfg config.Config) (*catalog.InMemoryStore, error) {
	schemes := catalog.Seed()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		schemes = loaded
	}
	if err := catalog.Validate(schemes); err != nil {
		return nil, err
	}
	return catalog.NewInMemoryStore(schemes), nil
}
