package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	badgecache "merit/internal/badge/cache"
	"merit/internal/badge/events"
	"merit/internal/badge/handler"
	badgemetrics "merit/internal/badge/metrics"
	badgeservice "merit/internal/badge/service"
	badgestore "merit/internal/badge/store"
	"merit/internal/platform/config"
	"merit/internal/platform/httpserver"
	"merit/internal/platform/logger"
	"merit/internal/platform/metrics"
	"merit/internal/platform/postgres"
	"merit/internal/platform/redis"
	"merit/internal/token"
	httptransport "merit/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Registry rules live in the badge service; storage, cache and event
// transports are all optional and fall back to in-memory implementations.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	deps := map[string]httptransport.HealthChecker{}

	var st badgestore.Store = badgestore.NewInMemory()
	db, err := postgres.Open(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
		pg := badgestore.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("schema bootstrap failed", "error", err)
			os.Exit(1)
		}
		st = pg
		deps["postgres"] = dbHealth{db}
		log.Info("using postgres store")
	} else {
		log.Info("postgres not configured, using in-memory store")
	}

	var scoreCache *badgecache.ScoreCache
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		scoreCache = badgecache.NewScoreCache(redisClient.Client, config.ScoreCacheTTL)
		deps["redis"] = redisClient
		log.Info("score cache enabled")
	}

	var publisher events.Publisher = events.NewMemory()
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafka(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		publisher = kafka
		deps["kafka"] = kafka
		log.Info("kafka event publisher enabled", "topic", cfg.KafkaTopic)
	}

	httpMetrics := metrics.New()
	registry := badgeservice.New(st,
		badgeservice.WithEvents(publisher),
		badgeservice.WithCache(scoreCache),
		badgeservice.WithMetrics(badgemetrics.New()),
		badgeservice.WithLogger(log),
	)

	jwtService := token.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	badgeHandler := handler.New(registry, log, httpMetrics, jwtService, cfg.AdminTokenHash)

	router := httptransport.NewRouter([]httptransport.Registrar{badgeHandler}, deps)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting merit registry", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// dbHealth adapts *sql.DB to the HealthChecker interface.
type dbHealth struct {
	db *sql.DB
}

func (h dbHealth) Health(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
