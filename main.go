// main.go
package main

import (
	"log"

	"helper-booking/cmd"
	"helper-booking/internal/data/memstore"
	"helper-booking/internal/data/repository"
	"helper-booking/internal/wire"
	"helper-booking/pkg/database"
	"helper-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.JWT.Secret == utils.DefaultJWTSecret {
		logger.Warn("JWT_SECRET not configured, using the development default")
	}

	// Connect to the document store. Unreachable is not fatal: the
	// memory store serves requests until mongo comes up.
	db, err := database.Connect(config.Mongo, logger)
	if err != nil {
		logger.Fatal("Failed to build mongo client", zap.Error(err))
	}
	defer db.Close()

	// Repositories: live mongo, memory fallback, and the routing layer
	// that picks between them per call.
	liveRepo := repository.NewMongoRepository(db.DB, logger)
	memRepo := memstore.NewRepository(memstore.New())
	repo := repository.NewFallbackRepository(liveRepo, memRepo, db.State)

	// Wire all dependencies
	app := wire.Wiring(repo, memRepo, config, db.State, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
