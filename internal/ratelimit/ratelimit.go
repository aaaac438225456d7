// Package ratelimit implements the fixed-window counter that throttles
// sign-in attempts. State is purely in-memory: a Limiter is constructed
// once per process and injected where it is needed, never shared as a
// package global. Stale windows are replaced lazily on the next hit for
// their key, so no sweeper goroutine runs; the map grows with the
// number of distinct client keys seen over the process lifetime, which
// is an accepted trade-off for this traffic.
package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Result describes the outcome of one Check call.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts hits per key in fixed windows of Window length,
// allowing at most Limit hits per window.
type Limiter struct {
	limit  int
	window time.Duration

	mu   sync.Mutex
	hits map[string]entry
}

// New returns a limiter allowing limit hits per window.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		hits:   make(map[string]entry),
	}
}

// Check records a hit for key at time now and reports whether it is
// within the window's budget. A key with no live window starts a fresh
// one; within a window the reset time is preserved across hits.
func (l *Limiter) Check(key string, now time.Time) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, ok := l.hits[key]
	if !ok || now.After(existing.resetAt) {
		next := entry{count: 1, resetAt: now.Add(l.window)}
		l.hits[key] = next
		return Result{Allowed: true, Remaining: max(0, l.limit-1), ResetAt: next.resetAt}
	}

	existing.count++
	l.hits[key] = existing
	return Result{
		Allowed:   existing.count <= l.limit,
		Remaining: max(0, l.limit-existing.count),
		ResetAt:   existing.resetAt,
	}
}

// ClientIP derives the rate-limit key for a request from its forwarding
// headers: the first X-Forwarded-For hop, then X-Real-IP, then the
// literal "unknown". The socket address is deliberately not consulted;
// behind the expected reverse proxy it would always be the proxy.
func ClientIP(h http.Header) string {
	if forwarded := h.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := h.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}
