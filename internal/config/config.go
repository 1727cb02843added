package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ProxyURL string
	Model    string

	Addr     string
	LogLevel string
	Debug    bool

	PreferIPv4 bool

	SessionMaxIdle time.Duration
	RequestTimeout time.Duration
	HTTPTimeout    time.Duration
	DialTimeout    time.Duration

	MaxConcurrent int
}

func Load() (Config, error) {
	cfg := Config{
		Model:          strings.TrimSpace(getEnv("GENERATION_MODEL", "")),
		Addr:           strings.TrimSpace(getEnv("ADDR", ":8080")),
		LogLevel:       strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		Debug:          getEnvBool("DEBUG", false),
		PreferIPv4:     getEnvBool("PREFER_IPV4", true),
		SessionMaxIdle: time.Duration(getEnvInt("SESSION_MAX_IDLE_MINUTES", 240)) * time.Minute,
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 240)) * time.Second,
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 300)) * time.Second,
		DialTimeout:    time.Duration(getEnvInt("HTTP_DIAL_TIMEOUT_SECONDS", 15)) * time.Second,
		MaxConcurrent:  getEnvInt("GENERATION_CONCURRENCY", 3),
	}

	cfg.ProxyURL = strings.TrimSpace(os.Getenv("PROXY_URL"))
	if cfg.ProxyURL == "" {
		return Config{}, errors.New("PROXY_URL is required")
	}

	if cfg.SessionMaxIdle < 0 {
		cfg.SessionMaxIdle = 0
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 240 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 300 * time.Second
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 15 * time.Second
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
