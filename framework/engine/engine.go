package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"arcade/framework"
	"arcade/framework/hashloc"
	"arcade/framework/routetable"
	"github.com/a-h/templ"
)

var (
	ErrMissingView     = errors.New("route view is not registered")
	ErrInvalidFallback = errors.New("invalid fallback configuration")
)

type Config struct {
	Resolver *routetable.Resolver
	Views    framework.ViewRegistry

	Fallback    framework.FallbackPolicy
	DefaultPath string

	NotFoundView func(notFoundContext framework.NotFoundContext) templ.Component
}

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeView
	OutcomeRedirect
	OutcomeNotFound
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeView:
		return "view"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "none"
	}
}

type Outcome struct {
	Kind          OutcomeKind
	RequestedPath string
	ResolvedPath  string
	ViewID        routetable.ViewID
	Component     templ.Component
}

type RouteInfo struct {
	Path   string            `json:"path"`
	ViewID routetable.ViewID `json:"view"`
	Href   string            `json:"href"`
}

type Engine struct {
	resolver     *routetable.Resolver
	views        framework.ViewRegistry
	fallback     framework.FallbackPolicy
	defaultPath  string
	notFoundView func(notFoundContext framework.NotFoundContext) templ.Component
	routes       []RouteInfo
}

func New(cfg Config) (*Engine, error) {
	if cfg.Resolver == nil {
		return nil, errors.New("route resolver is required")
	}
	if cfg.Views == nil {
		return nil, errors.New("view registry is required")
	}

	for _, viewID := range cfg.Resolver.ViewIDs() {
		if cfg.Views[viewID] == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingView, viewID)
		}
	}

	fallback, err := framework.ParseFallbackPolicy(string(cfg.Fallback))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFallback, err)
	}

	defaultPath := cfg.DefaultPath
	if defaultPath == "" {
		defaultPath = "/"
	}
	if fallback == framework.FallbackRedirectToDefault && !cfg.Resolver.Resolve(defaultPath).Matched() {
		return nil, fmt.Errorf("%w: default path %q does not resolve", ErrInvalidFallback, defaultPath)
	}

	notFoundView := cfg.NotFoundView
	if notFoundView == nil {
		notFoundView = defaultNotFoundView
	}

	entries := cfg.Resolver.Entries()
	routes := make([]RouteInfo, 0, len(entries))
	for _, entry := range entries {
		routes = append(routes, RouteInfo{
			Path:   entry.Path,
			ViewID: entry.ViewID,
			Href:   hashloc.Href(entry.Path),
		})
	}

	return &Engine{
		resolver:     cfg.Resolver,
		views:        cfg.Views,
		fallback:     fallback,
		defaultPath:  defaultPath,
		notFoundView: notFoundView,
		routes:       routes,
	}, nil
}

// Dispatch resolves requestedPath and applies the fallback policy on a miss.
func (engine *Engine) Dispatch(requestedPath string) Outcome {
	result := engine.resolver.Resolve(requestedPath)
	if result.Matched() {
		return engine.viewOutcome(OutcomeView, requestedPath, requestedPath, result.ViewID())
	}

	switch engine.fallback {
	case framework.FallbackRedirectToDefault:
		// Checked at construction.
		target := engine.resolver.Resolve(engine.defaultPath)
		return engine.viewOutcome(OutcomeRedirect, requestedPath, engine.defaultPath, target.ViewID())
	case framework.FallbackNoOp:
		return Outcome{Kind: OutcomeNone, RequestedPath: requestedPath}
	default:
		return Outcome{
			Kind:          OutcomeNotFound,
			RequestedPath: requestedPath,
			Component: engine.notFoundView(framework.NotFoundContext{
				RequestPath: requestedPath,
				Source:      framework.NotFoundSourceUnmatchedRoute,
			}),
		}
	}
}

func (engine *Engine) viewOutcome(
	kind OutcomeKind,
	requestedPath string,
	resolvedPath string,
	viewID routetable.ViewID,
) Outcome {
	render := engine.views[viewID]
	return Outcome{
		Kind:          kind,
		RequestedPath: requestedPath,
		ResolvedPath:  resolvedPath,
		ViewID:        viewID,
		Component: render(framework.RouteContext{
			RequestedPath: requestedPath,
			ResolvedPath:  resolvedPath,
			ViewID:        viewID,
		}),
	}
}

func (engine *Engine) Routes() []RouteInfo {
	out := make([]RouteInfo, len(engine.routes))
	copy(out, engine.routes)
	return out
}

func (engine *Engine) Fallback() framework.FallbackPolicy {
	return engine.fallback
}

func (engine *Engine) NotFound(notFoundContext framework.NotFoundContext) templ.Component {
	return engine.notFoundView(notFoundContext)
}

func defaultNotFoundView(notFoundContext framework.NotFoundContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="not-found"><h1>404</h1><p>No view for `+
			templ.EscapeString(notFoundContext.RequestPath)+`</p></section>`)
		return err
	})
}
