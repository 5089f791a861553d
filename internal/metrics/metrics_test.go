// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-hotels/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := metrics.InitRegistry()

	metrics.ObserveHTTP("/hotels", http.MethodGet, http.StatusOK, 12*time.Millisecond)
	metrics.ObserveHotelAccess(metrics.AccessTicketNotPaid)
	metrics.ObserveRateLimited()

	rr := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	out := string(body)
	assert.Contains(t, out, `event_hotels_http_requests_total{method="GET",route="/hotels",status="200"}`)
	assert.Contains(t, out, "event_hotels_http_request_duration_seconds")
	assert.Contains(t, out, `event_hotels_hotel_access_checks_total{outcome="ticket_not_paid"}`)
	assert.Contains(t, out, "event_hotels_rate_limited_requests_total")
	assert.Contains(t, out, "go_goroutines")
}

func TestInitRegistry_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.InitRegistry()
		metrics.InitRegistry()
	})
}

func TestHandler_LeavesCompressionToTransport(t *testing.T) {
	reg := metrics.InitRegistry()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	metrics.Handler(reg).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
