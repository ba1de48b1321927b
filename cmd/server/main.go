package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amora/config"
	"amora/internal/database"
	"amora/internal/router"
	"amora/pkg/geocode"
	"amora/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("amora", "info", "json")
		boot.Fatal().Err(err).Msg("config")
	}
	log := logger.New("amora", cfg.Server.LogLevel, cfg.Server.LogFormat)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	geocodeOpts := []geocode.Option{geocode.WithLogger(log)}
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Address,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, geocode cache disabled")
		} else {
			geocodeOpts = append(geocodeOpts, geocode.WithCache(geocode.NewRedisCache(rdb, cfg.Redis.GeocodeTTL)))
		}
	}
	if cfg.Geocode.APIKey == "" {
		log.Warn().Msg("no geocode API key configured, serving fixed fallback locations")
	}
	geocoder := geocode.NewClient(geocode.Config{
		APIKey:  cfg.Geocode.APIKey,
		BaseURL: cfg.Geocode.BaseURL,
		Timeout: cfg.Geocode.Timeout,
	}, geocodeOpts...)

	engine := router.Setup(cfg, db, geocoder, log)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
