package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	AppURL  string
	LogFile string
}

func Load() Config {
	// Local development reads .env; deployed environments set real env vars.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] could not load .env: %v", err)
		}
	}

	port := getEnv("PORT", "8080")
	cfg := Config{
		Port:    port,
		DBDSN:   getEnv("DB_DSN", "smartflow.db"), // sqlite file in project root
		AppURL:  getEnv("APP_URL", "http://localhost:"+port),
		LogFile: getEnv("LOG_FILE", ""),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s APP_URL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.AppURL, cfg.LogFile)
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
