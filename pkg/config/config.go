// Package config loads the server's runtime settings from environment
// variables, in the teacher's pkg/config style (a single Load
// function, fallback-to-default getEnv helper). The JWTSecret setting
// the teacher's Config carried belonged to the session-token surface
// that isn't part of this adapter; PuzzlesFile survives for /api/daily.
package config

import "os"

type Config struct {
	Port        string
	PuzzlesFile string
}

// Load reads configuration from environment variables, defaulting Port
// to 8080 and PuzzlesFile to unset (meaning /api/daily stays disabled)
// when the corresponding variables are unset.
func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		PuzzlesFile: getEnv("PUZZLES_FILE", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
