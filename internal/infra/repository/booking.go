package repository

import (
	"context"

	"lendloop/internal/domain/booking"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.BookerID()),
		pgconv.TimeToPgtype(b.Period().Start()),
		pgconv.TimeToPgtype(b.Period().End()),
		string(b.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return uuid.UUID(id.Bytes), nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, pgconv.UUIDToPgtype(id), string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("booking not found")
	}
	return nil
}
