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

// ticketRepository is the SQL implementation of [TicketRepository].
type ticketRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTicketRepository constructs a [TicketRepository] over db.
func NewTicketRepository(db *DB, log *logger.Logger) TicketRepository {
	log.Debug().Msg("creating ticket repository")
	return &ticketRepository{
		db:     db,
		logger: log,
	}
}

// FindByEnrollmentID returns the ticket of the enrollment with its
// [models.TicketType] populated, or [ErrNoTicketWasFound].
func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (models.Ticket, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.ticketByEnrollmentIDQuery(enrollmentID).ToSql()
	if err != nil {
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.Ticket
	tt := &t.TicketType
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.TicketTypeID, &t.EnrollmentID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ticket{}, ErrNoTicketWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*ticketRepository.FindByEnrollmentID").Int64("enrollment_id", enrollmentID).Msg("error finding ticket")
		return models.Ticket{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return t, nil
}
