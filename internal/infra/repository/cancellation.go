package repository

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"

	"github.com/jackc/pgx/v5"
)

// CancellationRepository appends audit rows in the same transaction that
// deletes the bookings.
type CancellationRepository struct{}

func NewCancellationRepository() *CancellationRepository {
	return &CancellationRepository{}
}

func (r *CancellationRepository) Append(ctx context.Context, tx pgx.Tx, records []booking.CancellationRecord) error {
	for _, rec := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO cancellations (booking_id, seat_id, date, user_name, source, cancelled_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.BookingID, rec.SeatID, rec.Date.Time(), rec.UserName, string(rec.Source), rec.CancelledAt)
		if err != nil {
			return infra.WrapRepoErr("failed to append cancellation record", err)
		}
	}
	return nil
}
