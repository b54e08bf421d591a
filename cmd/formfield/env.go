package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	envAddr     = "FORMFIELD_ADDR"
	envLocale   = "FORMFIELD_LOCALE"
	envThemeDir = "FORMFIELD_THEME_DIR"
	envLogLevel = "FORMFIELD_LOG_LEVEL"
)

// loadEnv applies a local .env file when present. Variables already set in
// the process environment are not overridden.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("could not load .env", "err", err)
	}
	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			log.Warn("invalid log level", "value", level)
			return
		}
		log.SetLevel(parsed)
	}
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
