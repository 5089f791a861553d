// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader_SetsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusPaymentRequired)

	assert.Equal(t, http.StatusPaymentRequired, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError) // should be ignored

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Write ----

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		explicitCode int
		writes       []string
		wantStatus   int
		wantSize     int
	}{
		{
			name:       "implicit 200 on first write",
			writes:     []string{"hello"},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name:         "explicit status kept",
			explicitCode: http.StatusUnauthorized,
			writes:       []string{"Unauthorized"},
			wantStatus:   http.StatusUnauthorized,
			wantSize:     12,
		},
		{
			name:       "size accumulates across writes",
			writes:     []string{"[", `{"id":1}`, "]"},
			wantStatus: http.StatusOK,
			wantSize:   10,
		},
		{
			name:       "empty write",
			writes:     []string{""},
			wantStatus: http.StatusOK,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
		})
	}
}

func TestResponseWriter_StatusDefaultsTo200(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.False(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Trace-ID", "abc")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
}
