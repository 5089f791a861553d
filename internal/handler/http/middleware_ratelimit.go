// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/metrics"
	"github.com/MKhiriev/go-event-hotels/internal/utils"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client IP may stay silent before its bucket
// is dropped. An idle bucket is full again long before that, so a returning
// client gets the same budget from a fresh one.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// ipRateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than ttl are swept while new IPs are added, at most once per ttl.
type ipRateLimiter struct {
	ips       map[string]*ipLimiter
	mu        sync.RWMutex
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPRateLimiter(r rate.Limit, b int) *ipRateLimiter {
	return &ipRateLimiter{
		ips:       make(map[string]*ipLimiter),
		r:         r,
		b:         b,
		ttl:       limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := i.now()

	i.mu.RLock()
	entry, exists := i.ips[ip]
	i.mu.RUnlock()
	if exists {
		entry.lastSeen.Store(now.UnixNano())
		return entry.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// another request may have added it meanwhile
	if entry, exists = i.ips[ip]; exists {
		entry.lastSeen.Store(now.UnixNano())
		return entry.limiter
	}

	if now.Sub(i.lastSweep) >= i.ttl {
		i.sweep(now)
	}

	entry = &ipLimiter{limiter: rate.NewLimiter(i.r, i.b)}
	entry.lastSeen.Store(now.UnixNano())
	i.ips[ip] = entry
	return entry.limiter
}

// sweep drops idle buckets. Callers hold the write lock.
func (i *ipRateLimiter) sweep(now time.Time) {
	deadline := now.Add(-i.ttl).UnixNano()
	for ip, entry := range i.ips {
		if entry.lastSeen.Load() < deadline {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// withRateLimit answers 429 once a client IP exhausts its bucket. It runs
// after middleware.RealIP, so RemoteAddr already holds the forwarded address
// when the request came through a proxy.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !h.limiter.getLimiter(ip).Allow() {
			metrics.ObserveRateLimited()
			logger.FromRequest(r).Warn().Str("ip", ip).Str("func", "*Handler.withRateLimit").Msg("rate limit exceeded")
			utils.WriteStatus(w, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
