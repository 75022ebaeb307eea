package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Read stores serve the query side from the pool directly; they never
// take the seat lock.

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) ListBySeat(ctx context.Context, seatID string) ([]*booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, seat_id, date, user_name, series_id, created_at
		FROM bookings
		WHERE seat_id = $1
		ORDER BY date`, seatID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by seat", err)
	}
	return collectBookings(rows)
}

func (s *BookingReadStore) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, seat_id, date, user_name, series_id, created_at
		FROM bookings
		ORDER BY date, seat_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		var (
			id        uuid.UUID
			seatID    string
			date      time.Time
			userName  string
			seriesID  *uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &seatID, &date, &userName, &seriesID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, booking.ReconstructBooking(
			id,
			seatID,
			booking.DateOf(date),
			booking.ReconstructUserName(userName),
			createdAt,
			seriesID,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

type SeatReadStore struct {
	pool *pgxpool.Pool
}

func NewSeatReadStore(pool *pgxpool.Pool) *SeatReadStore {
	return &SeatReadStore{pool: pool}
}

func (s *SeatReadStore) FindByID(ctx context.Context, id string) (*seat.Seat, error) {
	var (
		label string
		x, y  float64
	)
	err := s.pool.QueryRow(ctx, "SELECT id, label, x, y FROM seats WHERE id = $1", id).
		Scan(&id, &label, &x, &y)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seat by id", err)
	}
	return seat.ReconstructSeat(id, label, x, y), nil
}

func (s *SeatReadStore) ListAll(ctx context.Context) ([]*seat.Seat, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, label, x, y FROM seats ORDER BY label, id")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seats", err)
	}
	defer rows.Close()

	var result []*seat.Seat
	for rows.Next() {
		var (
			id, label string
			x, y      float64
		)
		if err := rows.Scan(&id, &label, &x, &y); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat row", err)
		}
		result = append(result, seat.ReconstructSeat(id, label, x, y))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seat rows", err)
	}
	return result, nil
}

type CancellationReadStore struct {
	pool *pgxpool.Pool
}

func NewCancellationReadStore(pool *pgxpool.Pool) *CancellationReadStore {
	return &CancellationReadStore{pool: pool}
}

func (s *CancellationReadStore) ListAll(ctx context.Context) ([]booking.CancellationRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT booking_id, seat_id, date, user_name, source, cancelled_at
		FROM cancellations
		ORDER BY cancelled_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellations", err)
	}
	defer rows.Close()

	var result []booking.CancellationRecord
	for rows.Next() {
		var (
			bookingID   uuid.UUID
			seatID      string
			date        time.Time
			userName    string
			source      string
			cancelledAt time.Time
		)
		if err := rows.Scan(&bookingID, &seatID, &date, &userName, &source, &cancelledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancellation row", err)
		}
		result = append(result, booking.CancellationRecord{
			BookingID:   bookingID,
			SeatID:      seatID,
			Date:        booking.DateOf(date),
			UserName:    userName,
			CancelledAt: cancelledAt,
			Source:      booking.CancellationSource(source),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cancellation rows", err)
	}
	return result, nil
}
