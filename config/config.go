package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process-wide settings resolved once at startup. The JWT secret
// is carried here and handed to the auth helpers explicitly instead of being
// read from the environment at call sites.
type Config struct {
	JWTSecret      []byte
	TokenTTL       time.Duration
	FrontendOrigin string
	Port           string
}

func Load() Config {
	return Config{
		JWTSecret:      []byte(getenv("JWT_SECRET", "CHANGE_ME_SECRET_KEY")),
		TokenTTL:       time.Duration(getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
		FrontendOrigin: getenv("FRONTEND_ORIGIN", "http://localhost:5173"),
		Port:           getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
