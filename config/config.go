package config

import (
	"os"

	"github.com/joho/godotenv"
)

// JWTSecret signs session tokens. Populated by Load.
var JWTSecret []byte

// Load reads .env (if present) and initialises process-wide settings.
// Call it once, before anything touches JWTSecret or the credential store.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "foodhub_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}
