// Package config loads the configuration of the reference server from the
// environment. A .env file in the working directory is loaded first if it exists,
// variables that are already set take precedence.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultAPIURL = "http://localhost:8090/api"
	DefaultPort   = "8090"
	DefaultDBPath = "data/budget-ok.db"
)

type Config struct {
	APIURL *url.URL // Public URL of the API, including the path prefix
	Port   string
	DBPath string

	GinMode   string // Empty if not set
	LogFormat string // Empty if not set

	// CORSAllowOrigins are origin patterns, e.g. "https://*.example.com".
	// CORS is disabled if empty.
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads the configuration.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() (Config, error) {
	apiURL, err := url.Parse(getEnv("API_URL", DefaultAPIURL))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	if apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, fmt.Errorf("environment variable API_URL must be an absolute URL, got %q", apiURL.String())
	}
	apiURL.Path = strings.TrimRight(apiURL.Path, "/")

	pprof := false
	if v, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		pprof, err = strconv.ParseBool(v)
		if err != nil {
			log.Warn().Str("ENABLE_PPROF", v).Msg("not a boolean, pprof is disabled")
		}
	}

	return Config{
		APIURL:           apiURL,
		Port:             getEnv("PORT", DefaultPort),
		DBPath:           getEnv("DB_PATH", DefaultDBPath),
		GinMode:          os.Getenv("GIN_MODE"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      pprof,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
