package main

import (
	"net/http"
	"os"

	"arcade/internal/config"
	"arcade/internal/logging"
	"arcade/internal/web"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	handler, err := web.NewHandler(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("handler setup failed")
	}

	logger.Info().Str("addr", cfg.ListenAddr).Msg("arcade listening")
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
