// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/config"
	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/store"
	"github.com/MKhiriev/go-event-hotels/internal/utils"
	"github.com/MKhiriev/go-event-hotels/models"
)

// authService verifies bearer tokens issued by the registration system.
// A token is accepted only when its signature is valid and a session row
// holding exactly that token exists.
type authService struct {
	// sessionRepository looks up the sessions created on sign-in.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim; empty disables the check.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction.
func NewAuthService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		sessionRepository: sessionRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		logger:            logger,
	}
}

// ParseToken validates tokenString and checks that a session exists for it.
//
// Returns the decoded token on success or an error matching ErrUnauthorized:
//   - ErrTokenIsExpiredOrInvalid for a bad signature, wrong issuer, expired
//     token, or a token without a user id;
//   - ErrSessionNotFound when no session holds the token or the session
//     belongs to another user.
//
// Storage failures are returned wrapped and do not match ErrUnauthorized.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindByToken(ctx, tokenString)
	if errors.Is(err, store.ErrNoSessionWasFound) {
		log.Debug().Int64("user_id", token.UserID).Str("func", "*authService.ParseToken").Msg("no session for token")
		return models.Token{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ParseToken").Msg("session lookup failed")
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != token.UserID {
		log.Warn().
			Int64("token_user_id", token.UserID).
			Int64("session_user_id", session.UserID).
			Str("func", "*authService.ParseToken").
			Msg("session belongs to another user")
		return models.Token{}, ErrSessionNotFound
	}

	return token, nil
}
