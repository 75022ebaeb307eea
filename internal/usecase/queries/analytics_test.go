//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/clock"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummaryCache struct {
	entries map[string]*queries.SummaryView
	hits    int
	sets    int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: map[string]*queries.SummaryView{}}
}

func (c *fakeSummaryCache) Get(_ context.Context, key string) (*queries.SummaryView, bool) {
	view, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return view, ok
}

func (c *fakeSummaryCache) Set(_ context.Context, key string, view *queries.SummaryView) {
	c.sets++
	c.entries[key] = view
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	mockClock := clock.NewMockClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	newQueries := func(t *testing.T, cache queries.SummaryCache) queries.AnalyticsQueries {
		t.Helper()
		bookings := &stubBookingReadStore{}
		for _, date := range []string{"2024-06-10", "2024-06-11", "2024-06-11"} {
			bookings.bookings = append(bookings.bookings, seededBooking(t, "S1", date, "alice"))
		}
		return queries.NewAnalyticsQueries(
			bookings, newSeatStore(t), &stubCancellationReadStore{}, cache, mockClock,
		)
	}

	t.Run("explicit range", func(t *testing.T) {
		q := newQueries(t, nil)

		from, to := "2024-06-10", "2024-06-11"
		view, err := q.Summary(ctx, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", view.From)
		assert.Equal(t, "2024-06-11", view.To)
		assert.Equal(t, 3, view.Active)
	})

	t.Run("inverted range", func(t *testing.T) {
		q := newQueries(t, nil)

		from, to := "2024-06-11", "2024-06-10"
		_, err := q.Summary(ctx, &from, &to)
		assert.True(t, errs.Is(err, queries.ErrInvalidRange))
	})

	t.Run("malformed date", func(t *testing.T) {
		q := newQueries(t, nil)

		from := "last monday"
		_, err := q.Summary(ctx, &from, nil)
		assert.True(t, errs.Is(err, queries.ErrInvalidDate))
	})

	t.Run("second call hits the cache", func(t *testing.T) {
		cache := newFakeSummaryCache()
		q := newQueries(t, cache)

		from, to := "2024-06-10", "2024-06-11"
		first, err := q.Summary(ctx, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 0, cache.hits)

		second, err := q.Summary(ctx, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.hits)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, first, second)
	})
}
