package queries

import (
	"context"
	"errors"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/analytics"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/clock"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
)

var ErrInvalidRange = errs.New("invalid analytics range")

// SummaryCache is the optional read-through cache in front of the summary
// computation. A nil cache disables caching; both methods must tolerate it.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*SummaryView, bool)
	Set(ctx context.Context, key string, view *SummaryView)
}

type AnalyticsQueries interface {
	Summary(ctx context.Context, from, to *string) (*SummaryView, error)
}

type analyticsQueriesImpl struct {
	bookings      BookingReadStore
	seats         SeatReadStore
	cancellations CancellationReadStore
	cache         SummaryCache
	clock         clock.Clock
}

func NewAnalyticsQueries(
	bookings BookingReadStore,
	seats SeatReadStore,
	cancellations CancellationReadStore,
	cache SummaryCache,
	clk clock.Clock,
) AnalyticsQueries {
	return &analyticsQueriesImpl{
		bookings:      bookings,
		seats:         seats,
		cancellations: cancellations,
		cache:         cache,
		clock:         clk,
	}
}

func (q *analyticsQueriesImpl) Summary(ctx context.Context, from, to *string) (*SummaryView, error) {
	fromDate, err := parseOptionalDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseOptionalDate(to)
	if err != nil {
		return nil, err
	}

	today := booking.DateOf(q.clock.Now())
	cacheKey := summaryCacheKey(fromDate, toDate, today)
	if q.cache != nil {
		if view, ok := q.cache.Get(ctx, cacheKey); ok {
			return view, nil
		}
	}

	bookings, err := q.bookings.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	seats, err := q.seats.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	cancellations, err := q.cancellations.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	summary, err := analytics.Summarize(bookings, seats, cancellations, fromDate, toDate, today)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidRange) {
			return nil, errs.Mark(err, ErrInvalidRange)
		}
		return nil, err
	}

	view := NewSummaryView(summary)
	if q.cache != nil {
		q.cache.Set(ctx, cacheKey, view)
	}
	return view, nil
}

func parseOptionalDate(value *string) (*booking.BookingDate, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := booking.NewBookingDate(*value)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	return &d, nil
}

func summaryCacheKey(from, to *booking.BookingDate, today booking.BookingDate) string {
	key := "summary:"
	if from != nil {
		key += from.String()
	}
	key += ".."
	if to != nil {
		key += to.String()
	}
	// The default range depends on "today"; keep stale entries from crossing
	// a midnight boundary.
	if from == nil || to == nil {
		key += "@" + today.String()
	}
	return key
}
