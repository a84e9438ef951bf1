package web

import (
	"fmt"
	"net/http"

	"arcade/framework"
	"arcade/framework/engine"
	"arcade/framework/httpserver"
	"arcade/framework/routetable"
	"arcade/internal/config"
	"arcade/internal/games"
	"arcade/internal/markdown"
	"github.com/rs/zerolog"
)

// LoadResolver prefers an explicit route file over the named profile.
func LoadResolver(routesFile string, profile string) (*routetable.Resolver, error) {
	if routesFile != "" {
		return routetable.LoadFile(routesFile)
	}
	return games.NewResolver(profile)
}

func NewEngine(cfg config.Config, resolver *routetable.Resolver) (*engine.Engine, error) {
	fallback, err := framework.ParseFallbackPolicy(cfg.Fallback)
	if err != nil {
		return nil, err
	}

	return engine.New(engine.Config{
		Resolver:     resolver,
		Views:        games.Views(resolver.Entries()),
		Fallback:     fallback,
		DefaultPath:  cfg.DefaultPath,
		NotFoundView: games.NotFoundView,
	})
}

func NewHandler(cfg config.Config, logger zerolog.Logger) (http.Handler, error) {
	resolver, err := LoadResolver(cfg.RoutesFile, cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	routeEngine, err := NewEngine(cfg, resolver)
	if err != nil {
		return nil, fmt.Errorf("create route engine: %w", err)
	}

	cachePolicies := httpserver.DefaultCachePolicies()
	if cfg.CacheView != "" {
		cachePolicies.View = cfg.CacheView
	}

	logger.Info().
		Int("routes", resolver.Len()).
		Str("profile", cfg.Profile).
		Str("routes_file", cfg.RoutesFile).
		Str("fallback", routeEngine.Fallback().String()).
		Msg("route table ready")

	return httpserver.New(httpserver.Config{
		Engine:        routeEngine,
		Title:         cfg.Title,
		Stylesheet:    markdown.Stylesheet(),
		Static:        httpserver.StaticMount{URLPrefix: "/static/", Dir: cfg.StaticDir},
		CachePolicies: cachePolicies,
		Logger:        logger,
	})
}
