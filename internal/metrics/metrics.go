// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the service and the
// helpers that record into them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "event_hotels"

// Hotel access outcomes recorded by ObserveHotelAccess.
const (
	AccessGranted             = "granted"
	AccessEnrollmentNotFound  = "enrollment_not_found"
	AccessTicketNotFound      = "ticket_not_found"
	AccessTicketExcludesHotel = "ticket_excludes_hotel"
	AccessTicketIsRemote      = "ticket_remote"
	AccessTicketNotPaid       = "ticket_not_paid"
	AccessError               = "error"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	HotelAccessChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "hotel_access_checks_total", Help: "Hotel eligibility checks by outcome."},
		[]string{"outcome"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limited_requests_total", Help: "Requests rejected by the rate limiter."},
	)
)

// InitRegistry returns a registry with the service collectors plus the Go
// runtime and process collectors.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		HTTPRequests, HTTPLatency, HotelAccessChecks, RateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{DisableCompression: true})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveHotelAccess(outcome string) {
	HotelAccessChecks.WithLabelValues(outcome).Inc()
}

func ObserveRateLimited() {
	RateLimited.Inc()
}
