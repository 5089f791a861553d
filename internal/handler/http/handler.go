// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-event-hotels/internal/config"
	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/metrics"
	"github.com/MKhiriev/go-event-hotels/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	// registry backs the /metrics endpoint.
	registry *prometheus.Registry

	// limiter is nil when rate limiting is disabled.
	limiter *ipRateLimiter

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		registry: metrics.InitRegistry(),
		cfg:      cfg,
		logger:   logger,
	}

	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		h.limiter = newIPRateLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	logger.Info().Msg("http handler created")
	return h
}
