package config

import (
	"fmt"
	"os"
)

// Config carries everything the server reads from the environment. It is
// built once in main and handed to whoever needs it; nothing else touches
// os.Getenv.
type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSecret       []byte
	StripeSecretKey string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenvDefault("PORT", "5000"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          getenvDefault("DB_NAME", "bistroDB"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}
	cfg.JWTSecret = []byte(secret)

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
