package readstore

import (
	"context"
	"time"

	"lendloop/internal/domain/booking"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingReadStore runs one ordered SQL query per classifier view. The six
// views share a base projection and differ only in predicate and ordering,
// so the WHERE and ORDER BY fragments are composed onto one SELECT.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingSelectSQL = `
SELECT b.id, b.start_at, b.end_at, b.status,
       i.id, i.owner_id, i.name,
       u.id, u.name,
       b.created_at, b.updated_at
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id
`

// Time-window views and the status buckets order by period end, newest
// first; FUTURE orders by period start. Ties break on id so pages are
// stable under equal timestamps.
const (
	orderByEndDesc   = ` ORDER BY b.end_at DESC, b.id DESC LIMIT $2 OFFSET $3`
	orderByStartDesc = ` ORDER BY b.start_at DESC, b.id DESC LIMIT $2 OFFSET $3`
)

const (
	orderByEndDescAt   = ` ORDER BY b.end_at DESC, b.id DESC LIMIT $3 OFFSET $4`
	orderByStartDescAt = ` ORDER BY b.start_at DESC, b.id DESC LIMIT $3 OFFSET $4`
)

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingSelectSQL+` WHERE b.id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) AllByBooker(ctx context.Context, bookerID uuid.UUID, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE b.booker_id = $1`+orderByEndDesc,
		pgconv.UUIDToPgtype(bookerID), limit, offset)
}

// CurrentByBooker is strict on both bounds, matching Period.Contains: a
// booking starting or ending exactly at now is not in progress.
func (s *BookingReadStore) CurrentByBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE b.booker_id = $1 AND b.start_at < $2 AND b.end_at > $2`+orderByEndDescAt,
		pgconv.UUIDToPgtype(bookerID), pgconv.TimeToPgtype(now), limit, offset)
}

func (s *BookingReadStore) PastByBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE b.booker_id = $1 AND b.end_at < $2`+orderByEndDescAt,
		pgconv.UUIDToPgtype(bookerID), pgconv.TimeToPgtype(now), limit, offset)
}

func (s *BookingReadStore) FutureByBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE b.booker_id = $1 AND b.start_at > $2`+orderByStartDescAt,
		pgconv.UUIDToPgtype(bookerID), pgconv.TimeToPgtype(now), limit, offset)
}

func (s *BookingReadStore) ByStatusAndBooker(ctx context.Context, bookerID uuid.UUID, status booking.Status, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE b.booker_id = $1 AND b.status = $2`+orderByEndDescAt,
		pgconv.UUIDToPgtype(bookerID), string(status), limit, offset)
}

func (s *BookingReadStore) AllByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE i.owner_id = $1`+orderByEndDesc,
		pgconv.UUIDToPgtype(ownerID), limit, offset)
}

func (s *BookingReadStore) CurrentByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE i.owner_id = $1 AND b.start_at < $2 AND b.end_at > $2`+orderByEndDescAt,
		pgconv.UUIDToPgtype(ownerID), pgconv.TimeToPgtype(now), limit, offset)
}

func (s *BookingReadStore) PastByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE i.owner_id = $1 AND b.end_at < $2`+orderByEndDescAt,
		pgconv.UUIDToPgtype(ownerID), pgconv.TimeToPgtype(now), limit, offset)
}

func (s *BookingReadStore) FutureByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE i.owner_id = $1 AND b.start_at > $2`+orderByStartDescAt,
		pgconv.UUIDToPgtype(ownerID), pgconv.TimeToPgtype(now), limit, offset)
}

func (s *BookingReadStore) ByStatusAndOwner(ctx context.Context, ownerID uuid.UUID, status booking.Status, limit, offset int32) ([]*queries.BookingView, error) {
	return s.list(ctx, bookingSelectSQL+` WHERE i.owner_id = $1 AND b.status = $2`+orderByEndDescAt,
		pgconv.UUIDToPgtype(ownerID), string(status), limit, offset)
}

const lastForItemSQL = `
SELECT id, booker_id, start_at, end_at
FROM bookings
WHERE item_id = $1 AND start_at < $2
ORDER BY start_at DESC
LIMIT 1
`

const nextForItemSQL = `
SELECT id, booker_id, start_at, end_at
FROM bookings
WHERE item_id = $1 AND start_at > $2
ORDER BY start_at ASC
LIMIT 1
`

func (s *BookingReadStore) LastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	return s.findRef(ctx, lastForItemSQL, itemID, now)
}

func (s *BookingReadStore) NextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	return s.findRef(ctx, nextForItemSQL, itemID, now)
}

func (s *BookingReadStore) findRef(ctx context.Context, sql string, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	var (
		id, bookerID pgtype.UUID
		start, end   pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(itemID), pgconv.TimeToPgtype(now)).
		Scan(&id, &bookerID, &start, &end)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find adjacent booking", err)
	}
	return &queries.BookingRef{
		ID:       uuid.UUID(id.Bytes),
		BookerID: uuid.UUID(bookerID.Bytes),
		Start:    start.Time,
		End:      end.Time,
	}, nil
}

const hasFinishedBookingSQL = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE item_id = $1 AND booker_id = $2 AND end_at < $3
)
`

// HasFinished ignores booking status on purpose; a past rental counts even
// when it ended rejected.
func (s *BookingReadStore) HasFinished(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, hasFinishedBookingSQL,
		pgconv.UUIDToPgtype(itemID),
		pgconv.UUIDToPgtype(bookerID),
		pgconv.TimeToPgtype(now),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}

func (s *BookingReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id, itemID, ownerID, bookerID pgtype.UUID
		start, end, created, updated  pgtype.Timestamptz
		status, itemName, bookerName  string
	)
	err := row.Scan(
		&id, &start, &end, &status,
		&itemID, &ownerID, &itemName,
		&bookerID, &bookerName,
		&created, &updated,
	)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:     uuid.UUID(id.Bytes),
		Start:  start.Time,
		End:    end.Time,
		Status: status,
		Item: queries.ItemRef{
			ID:      uuid.UUID(itemID.Bytes),
			OwnerID: uuid.UUID(ownerID.Bytes),
			Name:    itemName,
		},
		Booker: queries.UserRef{
			ID:   uuid.UUID(bookerID.Bytes),
			Name: bookerName,
		},
		CreatedAt: created.Time,
		UpdatedAt: updated.Time,
	}, nil
}
