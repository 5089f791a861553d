// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/config"
	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/store"
)

type Services struct {
	AuthService        AuthService
	HotelAccessService HotelAccessService
	HotelService       HotelService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	access := NewHotelAccessService(storages.EnrollmentRepository, storages.TicketRepository, logger)

	return &Services{
		AuthService:        NewAuthService(storages.SessionRepository, cfg.App, logger),
		HotelAccessService: access,
		HotelService:       NewHotelService(access, storages.HotelRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
