package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a local .env file if present. Real deployments set the
// variables directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
}

func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
