package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings taken from environment variables.
// Game content always comes from the JSON config file; these only control
// where the process runs and stores its data.
type Env struct {
	ConfigPath string `env:"CRONICAS_CONFIG" envDefault:"./cronicas_config.json"`
	DBPath     string `env:"CRONICAS_DB" envDefault:"./data/cronicas.db"`
	// Address overrides the config file's server.address when set.
	Address    string `env:"CRONICAS_ADDR"`
	PublicURL  string `env:"CRONICAS_PUBLIC_URL" envDefault:"http://localhost:3001"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

// ParseEnv loads the process settings from environment variables.
func ParseEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}
