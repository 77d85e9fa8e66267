package main

import (
	"github.com/joho/godotenv"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/api"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/config"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/logging"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/version"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	env, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}

	cfg := loadConfigOrExit(env.ConfigPath)
	cache := buildContent(cfg)
	repo := createRepositoryOrExit(env.DBPath)
	hub := notify.NewHub()

	handler := api.NewGameHandler(repo, cache, hub, env.PublicURL)
	router := api.NewRouter(handler, env.CORSOrigin)

	addr := cfg.ServerAddress
	if env.Address != "" {
		addr = env.Address
	}
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              version.String(),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
