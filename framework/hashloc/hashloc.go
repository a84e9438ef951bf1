// Package hashloc converts between fragment-addressed locations such as
// "https://host/#/v1" and the route paths a routetable.Resolver matches.
package hashloc

import (
	"net/url"
	"strings"
)

const rootPath = "/"

// Path returns the route path carried by rawLocation. It accepts a full URL,
// a bare fragment ("#/v1") or a bare path ("/v1"). An empty fragment is the
// root path. A query inside the fragment is dropped. The result is not
// otherwise normalized, so "/v1/" stays distinct from "/v1".
func Path(rawLocation string) string {
	fragment := rawLocation
	if idx := strings.IndexByte(rawLocation, '#'); idx >= 0 {
		fragment = rawLocation[idx+1:]
	} else if isAbsoluteURL(rawLocation) {
		return rootPath
	}

	if idx := strings.IndexByte(fragment, '?'); idx >= 0 {
		fragment = fragment[:idx]
	}
	if fragment == "" {
		return rootPath
	}

	if decoded, err := url.PathUnescape(fragment); err == nil {
		fragment = decoded
	}
	if !strings.HasPrefix(fragment, "/") {
		fragment = "/" + fragment
	}
	return fragment
}

func isAbsoluteURL(rawLocation string) bool {
	parsed, err := url.Parse(rawLocation)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

// Href builds the fragment href that navigates to path.
func Href(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "#" + path
}
