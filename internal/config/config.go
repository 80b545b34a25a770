package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from the
// environment and an optional .env file.
type Config struct {
	Server struct {
		Port int
	}
	Mongo struct {
		URI      string
		Database string
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
}

// Load reads configuration from environment variables. Recognized keys:
// PORT, MONGODB_URI, MONGODB_DATABASE, JWT_SECRET, EXPIRES_IN.
func Load() (Config, error) {
	// real environment wins over .env entries
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 5000)
	v.SetDefault("mongodb_uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb_database", "emedicine")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("expires_in", "24h")

	var cfg Config
	cfg.Server.Port = v.GetInt("port")
	cfg.Mongo.URI = v.GetString("mongodb_uri")
	cfg.Mongo.Database = v.GetString("mongodb_database")
	cfg.Auth.JWTSecret = v.GetString("jwt_secret")

	ttl, err := time.ParseDuration(v.GetString("expires_in"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EXPIRES_IN: %w", err)
	}
	cfg.Auth.TokenTTL = ttl

	return cfg, nil
}
