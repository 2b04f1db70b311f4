package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Package manifests carry repository references in whatever transport the
// author happened to use; the recognized forms are
//
//	git+<anything>             -> prefix stripped
//	ssh://git@host/owner/repo  -> https://host/owner/repo
//	git@host:owner/repo        -> https://host/owner/repo
//	git://host/owner/repo      -> https://host/owner/repo
//
// plus a trailing ".git" suffix, which is always removed. Unrecognized forms
// pass through unchanged. Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = strings.TrimSuffix(s, ".git")

	switch {
	case strings.HasPrefix(s, "ssh://git@"):
		s = "https://" + strings.TrimPrefix(s, "ssh://git@")
	case strings.HasPrefix(s, "git@"):
		rest := strings.TrimPrefix(s, "git@")
		if host, path, ok := strings.Cut(rest, ":"); ok {
			s = "https://" + host + "/" + path
		}
	case strings.HasPrefix(s, "git://"):
		s = "https://" + strings.TrimPrefix(s, "git://")
	}
	return s
}
