package commands

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/queue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner is satisfied by *pgxpool.Pool; commands open their own
// transaction so the seat lock, the reads, and the writes share one scope.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Write-side repository interfaces, declared on the consumer side.
type BookingRepository interface {
	// AcquireSeatLock serializes read-plan-write sequences per seat for the
	// lifetime of the transaction.
	AcquireSeatLock(ctx context.Context, tx pgx.Tx, seatID string) error
	ListBySeat(ctx context.Context, tx pgx.Tx, seatID string) ([]*booking.Booking, error)
	ListBySeries(ctx context.Context, tx pgx.Tx, seriesID uuid.UUID) ([]*booking.Booking, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error)
	Insert(ctx context.Context, tx pgx.Tx, bookings []*booking.Booking) error
	Delete(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error
}

type SeatRepository interface {
	FindByID(ctx context.Context, id string) (*seat.Seat, error)
	Insert(ctx context.Context, s *seat.Seat) error
	Delete(ctx context.Context, id string) error
}

type CancellationRepository interface {
	Append(ctx context.Context, tx pgx.Tx, records []booking.CancellationRecord) error
}

// EventPublisher is best effort; commands log failures and never fail the
// request over a broker problem.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event queue.BookingCreatedEvent) error
	PublishBookingCanceled(ctx context.Context, event queue.BookingCanceledEvent) error
}
