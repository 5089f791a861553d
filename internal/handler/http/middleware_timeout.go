// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withTimeout bounds the handling time of a request. The request context is
// cancelled when d elapses and the client gets 503.
//
// The timed handler runs on its own goroutine and may outlive ServeHTTP, while
// chi recycles its route context as soon as ServeHTTP returns. The handler
// therefore routes on a private route context.
func withTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timed := http.TimeoutHandler(next, d, http.StatusText(http.StatusServiceUnavailable))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				own := chi.NewRouteContext()
				own.Routes = rctx.Routes
				r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, own))
			}
			timed.ServeHTTP(w, r)
		})
	}
}
