// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-event-hotels/internal/service"
	"github.com/MKhiriev/go-event-hotels/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrEnrollmentNotFound, want: http.StatusNotFound},
		{err: service.ErrTicketNotFound, want: http.StatusNotFound},
		{err: service.ErrHotelNotFound, want: http.StatusNotFound},
		{err: service.ErrNotFound, want: http.StatusNotFound},
		{err: service.ErrTicketTypeExcludesHotel, want: http.StatusPaymentRequired},
		{err: service.ErrTicketTypeIsRemote, want: http.StatusPaymentRequired},
		{err: service.ErrTicketNotPaid, want: http.StatusPaymentRequired},
		{err: fmt.Errorf("wrapped: %w", service.ErrTicketNotPaid), want: http.StatusPaymentRequired},
		{err: service.ErrSessionNotFound, want: http.StatusUnauthorized},
		{err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{err: store.ErrDatabaseUnavailable, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: timeout", store.ErrExecutingQuery), want: http.StatusBadRequest},
		{err: errors.New("anything else"), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
