// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-event-hotels/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		middleware.RealIP,
	)
	// http.TimeoutHandler serves the rest of the chain on its own goroutine,
	// so everything that reads the route context has to run inside it.
	if h.cfg.RequestTimeout > 0 {
		router.Use(withTimeout(h.cfg.RequestTimeout))
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
	)
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", metrics.Handler(h.registry))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{hotelId}", h.getHotelWithRooms)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
