package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	c "github.com/luxtime/backend/internal/cache"
	"github.com/luxtime/backend/internal/config"
	h "github.com/luxtime/backend/internal/http"
	"github.com/luxtime/backend/internal/repository"
	s "github.com/luxtime/backend/internal/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	// The store is optional at startup: without DATABASE_URL (or with an
	// unreachable one) the server still runs, data endpoints report the
	// store as unavailable and /test shows the state.
	var mongoDB *mongo.Database
	if cfg.DatabaseURL != "" {
		mongoDB, err = repository.ConnectMongoDB(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			logger.Warn().Err(err).Msg("MongoDB unavailable, starting without store")
			mongoDB = nil
		} else {
			logger.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")
		}
	} else {
		logger.Warn().Msg("DATABASE_URL not set, starting without store")
	}

	store := repository.NewStore(mongoDB)
	watches := repository.NewWatchRepository(mongoDB)
	posts := repository.NewBlogPostRepository(mongoDB)
	orders := repository.NewOrderRepository(mongoDB)

	var catalogCache c.CatalogCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
		} else {
			catalogCache = c.NewRedisCache(redisClient)
			logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")
		}
	}

	catalog := s.NewCatalogService(watches, posts, catalogCache, logger)
	checkout := s.NewCheckoutService(orders, logger)
	seeder := s.NewSeedService(watches, posts, logger)

	router := h.NewRouter(h.RouterDeps{
		Catalog:  h.NewCatalogHandler(catalog),
		Checkout: h.NewCheckoutHandler(checkout),
		Seed:     h.NewSeedHandler(seeder),
		Diag:     h.NewDiagHandler(store, cfg.DatabaseURL != "", cfg.DatabaseName),
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if mongoDB != nil {
		if err := mongoDB.Client().Disconnect(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to disconnect MongoDB")
		}
	}
	logger.Info().Msg("server exited")
}
