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

// enrollmentRepository is the SQL implementation of [EnrollmentRepository].
type enrollmentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEnrollmentRepository constructs an [EnrollmentRepository] over db.
func NewEnrollmentRepository(db *DB, log *logger.Logger) EnrollmentRepository {
	log.Debug().Msg("creating enrollment repository")
	return &enrollmentRepository{
		db:     db,
		logger: log,
	}
}

// FindByUserID returns the enrollment owned by userID or
// [ErrNoEnrollmentWasFound].
func (r *enrollmentRepository) FindByUserID(ctx context.Context, userID int64) (models.Enrollment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.enrollmentByUserIDQuery(userID).ToSql()
	if err != nil {
		return models.Enrollment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var e models.Enrollment
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Enrollment{}, ErrNoEnrollmentWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.FindByUserID").Int64("user_id", userID).Msg("error finding enrollment")
		return models.Enrollment{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return e, nil
}
