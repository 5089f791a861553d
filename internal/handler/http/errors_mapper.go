// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-event-hotels/internal/service"
)

// errorStatusMap lists the error kinds that have a dedicated status. Every
// specific service error wraps exactly one of them.
var errorStatusMap = map[error]int{
	service.ErrUnauthorized:    http.StatusUnauthorized,
	service.ErrNotFound:        http.StatusNotFound,
	service.ErrPaymentRequired: http.StatusPaymentRequired,
}

// statusFromError returns the response status for err. Anything not listed
// in errorStatusMap, storage failures included, answers 400.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}
