//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingReadStore struct {
	bookings []*booking.Booking
}

func (s *stubBookingReadStore) ListBySeat(_ context.Context, seatID string) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.SeatID() == seatID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingReadStore) ListAll(_ context.Context) ([]*booking.Booking, error) {
	return s.bookings, nil
}

type stubSeatReadStore struct {
	seats map[string]*seat.Seat
}

func (s *stubSeatReadStore) FindByID(_ context.Context, id string) (*seat.Seat, error) {
	if found, ok := s.seats[id]; ok {
		return found, nil
	}
	return nil, infra.WrapRepoErr("seat not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (s *stubSeatReadStore) ListAll(_ context.Context) ([]*seat.Seat, error) {
	out := make([]*seat.Seat, 0, len(s.seats))
	for _, found := range s.seats {
		out = append(out, found)
	}
	return out, nil
}

type stubCancellationReadStore struct {
	records []booking.CancellationRecord
}

func (s *stubCancellationReadStore) ListAll(_ context.Context) ([]booking.CancellationRecord, error) {
	return s.records, nil
}

func seededBooking(t *testing.T, seatID, date, user string) *booking.Booking {
	t.Helper()
	name, err := booking.NewUserName(user)
	require.NoError(t, err)
	d, err := booking.NewBookingDate(date)
	require.NoError(t, err)
	createdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(uuid.New(), seatID, d, name, createdAt, nil)
}

func newSeatStore(t *testing.T) *stubSeatReadStore {
	t.Helper()
	s1, err := seat.NewSeat("S1", "Window desk", 0, 0)
	require.NoError(t, err)
	return &stubSeatReadStore{seats: map[string]*seat.Seat{"S1": s1}}
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves availability, conflicts and suggestions", func(t *testing.T) {
		bookings := &stubBookingReadStore{bookings: []*booking.Booking{
			seededBooking(t, "S1", "2024-06-12", "bob"),
		}}
		q := queries.NewBookingQueries(bookings, newSeatStore(t))

		preview, err := q.Preview(ctx, queries.PreviewParams{
			SeatID:     "S1",
			Date:       "2024-06-10",
			Recurrence: &queries.RecurrenceInput{Frequency: "daily", Count: 5},
		})
		require.NoError(t, err)

		assert.Equal(t, "S1", preview.SeatID)
		assert.Equal(t, 5, preview.RequestedCount)
		assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-13", "2024-06-14"}, preview.Available)
		require.Len(t, preview.Conflicts, 1)
		assert.Equal(t, "2024-06-12", preview.Conflicts[0].Date)
		assert.Equal(t, "bob", preview.Conflicts[0].UserName)

		require.NotNil(t, preview.Suggestions.Shorten)
		assert.Equal(t, 2, preview.Suggestions.Shorten.Count)
		require.NotNil(t, preview.Suggestions.ContiguousBlock)
		require.NotNil(t, preview.Suggestions.AdjustStart)
		assert.Equal(t, "2024-06-13", preview.Suggestions.AdjustStart.StartDate)
	})

	t.Run("conflict-free single date", func(t *testing.T) {
		q := queries.NewBookingQueries(&stubBookingReadStore{}, newSeatStore(t))

		preview, err := q.Preview(ctx, queries.PreviewParams{SeatID: "S1", Date: "2024-06-10"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-06-10"}, preview.Available)
		assert.Empty(t, preview.Conflicts)
		assert.Nil(t, preview.Recurrence)
		assert.Nil(t, preview.Suggestions.AdjustStart)
	})

	t.Run("unknown seat", func(t *testing.T) {
		q := queries.NewBookingQueries(&stubBookingReadStore{}, newSeatStore(t))

		_, err := q.Preview(ctx, queries.PreviewParams{SeatID: "S9", Date: "2024-06-10"})
		assert.ErrorIs(t, err, queries.ErrSeatNotFound)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		q := queries.NewBookingQueries(&stubBookingReadStore{}, newSeatStore(t))

		_, err := q.Preview(ctx, queries.PreviewParams{SeatID: "S1", Date: "10/06/2024"})
		assert.True(t, errs.Is(err, queries.ErrInvalidDate))

		_, err = q.Preview(ctx, queries.PreviewParams{
			SeatID:     "S1",
			Date:       "2024-06-10",
			Recurrence: &queries.RecurrenceInput{Frequency: "daily", Count: 99},
		})
		assert.True(t, errs.Is(err, queries.ErrInvalidRecurrence))
	})
}

func TestListSeatBookings(t *testing.T) {
	ctx := context.Background()

	bookings := &stubBookingReadStore{bookings: []*booking.Booking{
		seededBooking(t, "S1", "2024-06-10", "alice"),
		seededBooking(t, "S2", "2024-06-10", "bob"),
		seededBooking(t, "S1", "2024-06-11", "alice"),
	}}
	q := queries.NewBookingQueries(bookings, newSeatStore(t))

	views, err := q.ListSeatBookings(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "2024-06-10", views[0].Date)
	assert.Equal(t, "2024-06-11", views[1].Date)

	_, err = q.ListSeatBookings(ctx, "S9")
	assert.ErrorIs(t, err, queries.ErrSeatNotFound)
}
