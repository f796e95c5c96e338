package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tavola/restaurant-hours/internal/cache"
	"github.com/tavola/restaurant-hours/internal/config"
	dbpkg "github.com/tavola/restaurant-hours/internal/db"
	"github.com/tavola/restaurant-hours/internal/logger"
	"github.com/tavola/restaurant-hours/internal/routes"
)

func main() {

	logger.Setup()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store, err := cache.FromConfig(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure cache")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
