package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"arcade/framework"
	"arcade/framework/engine"
	"arcade/framework/hashloc"
	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

const defaultCacheControlPolicy = "public, max-age=3600, s-maxage=3600"
const defaultViewCachePolicy = "no-cache"
const defaultHealthPath = "/healthz"
const defaultHealthBody = "ok"
const defaultStaticPrefix = "/static/"
const defaultTitle = "Arcade"

const (
	viewPath   = "/_view"
	routesPath = "/_routes"

	headerRouteView     = "X-Route-View"
	headerRoutePath     = "X-Route-Path"
	headerRouteRedirect = "X-Route-Redirect"
)

type StaticMount struct {
	URLPrefix string
	Dir       string
}

type CachePolicies struct {
	HTML   string
	View   string
	Static string
	Health string
	Error  string
}

func DefaultCachePolicies() CachePolicies {
	return CachePolicies{
		HTML:   defaultCacheControlPolicy,
		View:   defaultViewCachePolicy,
		Static: defaultCacheControlPolicy,
		Health: defaultCacheControlPolicy,
		Error:  defaultCacheControlPolicy,
	}
}

type Config struct {
	Engine *engine.Engine

	Title      string
	Stylesheet string
	Static     StaticMount

	CachePolicies CachePolicies

	Logger zerolog.Logger

	HealthPath string
	HealthBody string
}

type server struct {
	cachePolicies CachePolicies
	logger        zerolog.Logger
	healthPath    string
	healthBody    string
	shell         templ.Component

	routeEngine *engine.Engine
}

func New(cfg Config) (http.Handler, error) {
	if cfg.Engine == nil {
		return nil, errors.New("route engine is required")
	}

	cachePolicies := withDefaultPolicies(cfg.CachePolicies)
	healthPath := normalizeHealthPath(cfg.HealthPath)
	healthBody := strings.TrimSpace(cfg.HealthBody)
	if healthBody == "" {
		healthBody = defaultHealthBody
	}
	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle
	}

	srv := &server{
		cachePolicies: cachePolicies,
		logger:        cfg.Logger,
		healthPath:    healthPath,
		healthBody:    healthBody,
		routeEngine:   cfg.Engine,
	}
	srv.shell = shellDocument(title, cfg.Stylesheet, cfg.Engine.Routes())

	mux := http.NewServeMux()
	if strings.TrimSpace(cfg.Static.Dir) != "" {
		prefix := normalizeStaticPrefix(cfg.Static.URLPrefix)
		fs := http.FileServer(http.Dir(cfg.Static.Dir))
		mux.Handle(prefix, withCachePolicy(cachePolicies.Static, http.StripPrefix(prefix, fs)))
	}

	mux.HandleFunc(viewPath, srv.handleView)
	mux.HandleFunc(routesPath, srv.handleRoutes)
	mux.HandleFunc("/", srv.handleRoot)
	return mux, nil
}

func (s *server) handleRoot(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case s.healthPath:
		s.handleHealth(w)
	case "/":
		if err := s.renderWithStatus(r, w, s.shell, 0, s.cachePolicies.HTML); err != nil {
			s.handleServerError(w, fmt.Errorf("render shell: %w", err))
		}
	default:
		s.handleNotFound(w, r, framework.NotFoundContext{
			RequestPath: r.URL.Path,
			Source:      framework.NotFoundSourceUnknownPath,
		})
	}
}

// handleView answers the shell's hashchange fetches. The path query carries
// either a route path or a whole fragment.
func (s *server) handleView(w http.ResponseWriter, r *http.Request) {
	requestedPath := hashloc.Path(r.URL.Query().Get("path"))
	outcome := s.routeEngine.Dispatch(requestedPath)

	s.logger.Debug().
		Str("requested_path", outcome.RequestedPath).
		Str("outcome", outcome.Kind.String()).
		Str("view", string(outcome.ViewID)).
		Msg("dispatch view")

	switch outcome.Kind {
	case engine.OutcomeView, engine.OutcomeRedirect:
		w.Header().Set(headerRouteView, string(outcome.ViewID))
		w.Header().Set(headerRoutePath, outcome.ResolvedPath)
		if outcome.Kind == engine.OutcomeRedirect {
			w.Header().Set(headerRouteRedirect, hashloc.Href(outcome.ResolvedPath))
		}
		if err := s.renderWithStatus(r, w, outcome.Component, 0, s.cachePolicies.View); err != nil {
			s.handleServerError(w, fmt.Errorf("render view %q: %w", outcome.ViewID, err))
		}
	case engine.OutcomeNotFound:
		if outcome.Component == nil {
			setCachePolicy(w, s.cachePolicies.Error)
			http.NotFound(w, r)
			return
		}
		if err := s.renderWithStatus(r, w, outcome.Component, http.StatusNotFound, s.cachePolicies.Error); err != nil {
			s.handleServerError(w, fmt.Errorf("render not found view: %w", err))
		}
	default:
		setCachePolicy(w, s.cachePolicies.View)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *server) handleRoutes(w http.ResponseWriter, _ *http.Request) {
	setCachePolicy(w, s.cachePolicies.HTML)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(s.routeEngine.Routes()); err != nil {
		s.logger.Error().Err(err).Msg("encode route manifest")
	}
}

func (s *server) renderWithStatus(
	r *http.Request,
	w http.ResponseWriter,
	component templ.Component,
	statusCode int,
	cachePolicy string,
) error {
	setCachePolicy(w, cachePolicy)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode > 0 {
		w.WriteHeader(statusCode)
	}
	return component.Render(r.Context(), w)
}

func (s *server) handleNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	component := s.routeEngine.NotFound(notFoundContext)
	if component == nil {
		setCachePolicy(w, s.cachePolicies.Error)
		http.NotFound(w, r)
		return
	}
	if err := s.renderWithStatus(r, w, component, http.StatusNotFound, s.cachePolicies.Error); err != nil {
		s.handleServerError(w, fmt.Errorf("render not found page: %w", err))
	}
}

func (s *server) handleServerError(w http.ResponseWriter, err error) {
	setCachePolicy(w, s.cachePolicies.Error)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	s.logger.Error().Err(err).Msg("server error")
}

func (s *server) handleHealth(w http.ResponseWriter) {
	setCachePolicy(w, s.cachePolicies.Health)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.healthBody))
}

func normalizeStaticPrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return defaultStaticPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func normalizeHealthPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return defaultHealthPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func withDefaultPolicies(policies CachePolicies) CachePolicies {
	defaults := DefaultCachePolicies()
	if strings.TrimSpace(policies.HTML) == "" {
		policies.HTML = defaults.HTML
	}
	if strings.TrimSpace(policies.View) == "" {
		policies.View = defaults.View
	}
	if strings.TrimSpace(policies.Static) == "" {
		policies.Static = defaults.Static
	}
	if strings.TrimSpace(policies.Health) == "" {
		policies.Health = defaults.Health
	}
	if strings.TrimSpace(policies.Error) == "" {
		policies.Error = defaults.Error
	}
	return policies
}

func setCachePolicy(w http.ResponseWriter, policy string) {
	policy = strings.TrimSpace(policy)
	if policy == "" {
		return
	}
	w.Header().Set("Cache-Control", policy)
}

func withCachePolicy(policy string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCachePolicy(w, policy)
		next.ServeHTTP(w, r)
	})
}
