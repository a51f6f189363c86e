package checker

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Conn is an open database connection that can be probed.
type Conn interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Dialer opens a connection for uri.
type Dialer func(ctx context.Context, uri string) (Conn, error)

// Backend is a database family reachable by URI scheme.
type Backend struct {
	ID   string // short id used in logs and metric labels
	Name string // display name used in messages
	Dial Dialer
}

// DefaultBackends maps URI schemes to the built-in backends.
func DefaultBackends() map[string]Backend {
	mongo := Backend{ID: "mongodb", Name: "MongoDB", Dial: dialMongo}
	redis := Backend{ID: "redis", Name: "Redis", Dial: dialRedis}
	return map[string]Backend{
		"mongodb":     mongo,
		"mongodb+srv": mongo,
		"redis":       redis,
		"rediss":      redis,
	}
}

// Lookup picks the backend for uri by its scheme. The scheme is cut off by
// hand because multi-host MongoDB URIs are not valid for net/url.
func Lookup(backends map[string]Backend, uri string) (Backend, error) {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok || scheme == "" {
		return Backend{}, fmt.Errorf("connection string has no scheme (expected one of: %s)", schemes(backends))
	}

	b, ok := backends[strings.ToLower(scheme)]
	if !ok {
		return Backend{}, fmt.Errorf("unsupported connection scheme %q (expected one of: %s)", scheme, schemes(backends))
	}
	return b, nil
}

func schemes(backends map[string]Backend) string {
	names := make([]string, 0, len(backends))
	for s := range backends {
		names = append(names, s)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
