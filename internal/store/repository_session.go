// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over db.
func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	log.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: log,
	}
}

// FindByToken returns the newest session holding token, or
// [ErrNoSessionWasFound].
func (r *sessionRepository) FindByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sessionByTokenQuery(token).ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoSessionWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindByToken").Msg("error finding session")
		return models.Session{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return s, nil
}
