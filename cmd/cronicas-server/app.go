package main

import (
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/config"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/logging"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid game configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

func buildContent(cfg *config.LoadedConfig) *content.Cache {
	return content.New(cfg)
}
