package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingRepository is the write side. Every method runs inside the
// caller's transaction so the advisory lock covers the whole
// read-plan-write sequence.
type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// AcquireSeatLock takes a transaction-scoped advisory lock keyed on the
// seat id. Released automatically at commit or rollback.
func (r *BookingRepository) AcquireSeatLock(ctx context.Context, tx pgx.Tx, seatID string) error {
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", seatLockKey(seatID)); err != nil {
		return infra.WrapRepoErr("failed to acquire seat lock", err)
	}
	return nil
}

func (r *BookingRepository) ListBySeat(ctx context.Context, tx pgx.Tx, seatID string) ([]*booking.Booking, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, seat_id, date, user_name, series_id, created_at
		FROM bookings
		WHERE seat_id = $1
		ORDER BY date`, seatID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by seat", err)
	}
	return scanBookings(rows)
}

func (r *BookingRepository) ListBySeries(ctx context.Context, tx pgx.Tx, seriesID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, seat_id, date, user_name, series_id, created_at
		FROM bookings
		WHERE series_id = $1
		ORDER BY date`, seriesID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by series", err)
	}
	return scanBookings(rows)
}

func (r *BookingRepository) FindByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, seat_id, date, user_name, series_id, created_at
		FROM bookings
		WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, tx pgx.Tx, bookings []*booking.Booking) error {
	for _, b := range bookings {
		_, err := tx.Exec(ctx, `
			INSERT INTO bookings (id, seat_id, date, user_name, series_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			b.ID(), b.SeatID(), b.Date().Time(), b.UserName().String(), b.SeriesID(), b.CreatedAt())
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking", err)
		}
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error {
	tag, err := tx.Exec(ctx, "DELETE FROM bookings WHERE id = ANY($1)", ids)
	if err != nil {
		return infra.WrapRepoErr("failed to delete bookings", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return infra.WrapRepoErr("some bookings were already gone", nil, infra.KindNotFound)
	}
	return nil
}

func seatLockKey(seatID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seatID))
	return int64(h.Sum64())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id        uuid.UUID
		seatID    string
		date      time.Time
		userName  string
		seriesID  *uuid.UUID
		createdAt time.Time
	)
	if err := row.Scan(&id, &seatID, &date, &userName, &seriesID, &createdAt); err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id,
		seatID,
		booking.DateOf(date),
		booking.ReconstructUserName(userName),
		createdAt,
		seriesID,
	), nil
}

func scanBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
