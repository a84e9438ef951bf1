package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ARCADE_LISTEN_ADDR", "ARCADE_STATIC_DIR", "ARCADE_TITLE", "ARCADE_ROUTES_FILE",
		"ARCADE_PROFILE", "ARCADE_FALLBACK", "ARCADE_DEFAULT_PATH", "ARCADE_CACHE_VIEW",
		"ARCADE_LOG_LEVEL", "ARCADE_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.Profile != "extended" {
		t.Fatalf("expected extended profile, got %q", cfg.Profile)
	}
	if cfg.Fallback != "show-error-view" {
		t.Fatalf("expected show-error-view fallback, got %q", cfg.Fallback)
	}
	if cfg.DefaultPath != "/" {
		t.Fatalf("expected root default path, got %q", cfg.DefaultPath)
	}
	if cfg.RoutesFile != "" || cfg.StaticDir != "" || cfg.CacheView != "" {
		t.Fatalf("expected optional settings to stay empty, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ARCADE_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("ARCADE_PROFILE", "classic")
	t.Setenv("ARCADE_FALLBACK", " redirect-to-default ")
	t.Setenv("ARCADE_ROUTES_FILE", "/etc/arcade/routes.toml")
	t.Setenv("ARCADE_LOG_FORMAT", "json")

	cfg := Load()
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.Profile != "classic" {
		t.Fatalf("unexpected profile %q", cfg.Profile)
	}
	if cfg.Fallback != "redirect-to-default" {
		t.Fatalf("expected trimmed fallback, got %q", cfg.Fallback)
	}
	if cfg.RoutesFile != "/etc/arcade/routes.toml" {
		t.Fatalf("unexpected routes file %q", cfg.RoutesFile)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("unexpected log format %q", cfg.LogFormat)
	}
}
