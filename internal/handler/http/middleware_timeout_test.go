// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout_RoutesOnPrivateRouteContext(t *testing.T) {
	outer := chi.NewRouteContext()
	outer.Routes = chi.NewRouter()

	var inner *chi.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = chi.RouteContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, outer))
	rr := httptest.NewRecorder()

	withTimeout(time.Second)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, inner)
	assert.NotSame(t, outer, inner)
	assert.Equal(t, outer.Routes, inner.Routes)
}

func TestWithTimeout_Returns503AfterDeadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})

	rr := httptest.NewRecorder()
	withTimeout(10*time.Millisecond)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hotels", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), rr.Body.String())
}
