package framework

import (
	"fmt"
	"strings"

	"arcade/framework/routetable"
	"github.com/a-h/templ"
)

type ViewRenderer func(route RouteContext) templ.Component

type ViewRegistry map[routetable.ViewID]ViewRenderer

type RouteContext struct {
	RequestedPath string
	ResolvedPath  string
	ViewID        routetable.ViewID
}

type FallbackPolicy string

const (
	FallbackRedirectToDefault FallbackPolicy = "redirect-to-default"
	FallbackShowErrorView     FallbackPolicy = "show-error-view"
	FallbackNoOp              FallbackPolicy = "no-op"
)

func ParseFallbackPolicy(raw string) (FallbackPolicy, error) {
	switch policy := FallbackPolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case FallbackRedirectToDefault, FallbackShowErrorView, FallbackNoOp:
		return policy, nil
	case "":
		return FallbackShowErrorView, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q", raw)
	}
}

func (p FallbackPolicy) String() string {
	return string(p)
}

type NotFoundSource string

const (
	NotFoundSourceUnmatchedRoute NotFoundSource = "unmatched_route"
	NotFoundSourceUnknownPath    NotFoundSource = "unknown_path"
)

type NotFoundContext struct {
	RequestPath string
	Source      NotFoundSource
}
