package queries

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
)

var (
	ErrSeatNotFound      = errs.New("seat not found")
	ErrInvalidDate       = errs.New("invalid date")
	ErrInvalidRecurrence = errs.New("invalid recurrence")
	ErrReadFailed        = errs.New("read store operation failed")
)

// RecurrenceInput is the transport-agnostic recurrence payload shared by
// preview and create requests.
type RecurrenceInput struct {
	Frequency string
	Count     int
}

// ToSpec parses and validates the payload into a domain spec. A nil input
// or a count of 1 yields a nil spec (no recurrence).
func (r *RecurrenceInput) ToSpec() (*booking.RecurrenceSpec, error) {
	if r == nil {
		return nil, nil
	}
	spec := &booking.RecurrenceSpec{
		Frequency: booking.Frequency(r.Frequency),
		Count:     r.Count,
	}
	if err := spec.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidRecurrence)
	}
	return spec.Normalize(), nil
}

type PreviewParams struct {
	SeatID     string
	Date       string
	Recurrence *RecurrenceInput
}

type BookingReadStore interface {
	ListBySeat(ctx context.Context, seatID string) ([]*booking.Booking, error)
	ListAll(ctx context.Context) ([]*booking.Booking, error)
}

type SeatReadStore interface {
	FindByID(ctx context.Context, id string) (*seat.Seat, error)
	ListAll(ctx context.Context) ([]*seat.Seat, error)
}

type CancellationReadStore interface {
	ListAll(ctx context.Context) ([]booking.CancellationRecord, error)
}

type BookingQueries interface {
	Preview(ctx context.Context, params PreviewParams) (*PreviewView, error)
	ListSeatBookings(ctx context.Context, seatID string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	seats    SeatReadStore
}

func NewBookingQueries(bookings BookingReadStore, seats SeatReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, seats: seats}
}

// Preview runs the full plan-and-suggest pipeline without writing anything.
func (q *bookingQueriesImpl) Preview(ctx context.Context, params PreviewParams) (*PreviewView, error) {
	if _, err := q.seats.FindByID(ctx, params.SeatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	start, err := booking.NewBookingDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	spec, err := params.Recurrence.ToSpec()
	if err != nil {
		return nil, err
	}

	existing, err := q.bookings.ListBySeat(ctx, params.SeatID)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	index := booking.NewBookingIndex(params.SeatID, existing)
	plan, err := booking.BuildPlan(params.SeatID, start, spec, index)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecurrence)
	}

	suggestions, err := booking.Suggest(plan, index)
	if err != nil {
		// Stepping guard breach: a defect, surfaced loudly rather than mapped
		// to a client error.
		return nil, err
	}

	return NewPreviewView(plan, suggestions), nil
}

func (q *bookingQueriesImpl) ListSeatBookings(ctx context.Context, seatID string) ([]*BookingView, error) {
	if _, err := q.seats.FindByID(ctx, seatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	bookings, err := q.bookings.ListBySeat(ctx, seatID)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = NewBookingView(b)
	}
	return views, nil
}
