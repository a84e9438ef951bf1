package config

import (
	"os"
	"strings"
)

type Config struct {
	ListenAddr string
	StaticDir  string
	Title      string

	RoutesFile  string
	Profile     string
	Fallback    string
	DefaultPath string

	CacheView string

	LogLevel  string
	LogFormat string
}

func Load() Config {
	return Config{
		ListenAddr:  getEnv("ARCADE_LISTEN_ADDR", ":8080"),
		StaticDir:   strings.TrimSpace(os.Getenv("ARCADE_STATIC_DIR")),
		Title:       getEnv("ARCADE_TITLE", "Arcade"),
		RoutesFile:  strings.TrimSpace(os.Getenv("ARCADE_ROUTES_FILE")),
		Profile:     getEnv("ARCADE_PROFILE", "extended"),
		Fallback:    getEnv("ARCADE_FALLBACK", "show-error-view"),
		DefaultPath: getEnv("ARCADE_DEFAULT_PATH", "/"),
		CacheView:   strings.TrimSpace(os.Getenv("ARCADE_CACHE_VIEW")),
		LogLevel:    getEnv("ARCADE_LOG_LEVEL", "info"),
		LogFormat:   getEnv("ARCADE_LOG_FORMAT", "console"),
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}
