package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from the process environment.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g., ":8080")
//	DATABASE_DSN  PostgreSQL DSN
//	SECRET_KEY    JWT HMAC secret key
//	TOKEN_TTL     access token validity, time.ParseDuration format (e.g., "15m")
//
// Unset variables leave the current values untouched. A malformed TOKEN_TTL
// is ignored rather than fatal; flags can still override it.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
