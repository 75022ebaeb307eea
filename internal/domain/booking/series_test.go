//go:build unit

package booking_test

import (
	"testing"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionSeries(t *testing.T) {
	seriesID := uuid.New()
	otherSeries := uuid.New()

	t.Run("removes only future occurrences of the series", func(t *testing.T) {
		past := newTestBooking(t, "S1", "2023-12-30", "alice", &seriesID)
		future := newTestBooking(t, "S1", "2024-01-02", "alice", &seriesID)
		unrelated := newTestBooking(t, "S1", "2024-01-02", "bob", &otherSeries)
		single := newTestBooking(t, "S2", "2024-01-05", "carol", nil)

		keep, remove := booking.PartitionSeries(
			[]*booking.Booking{past, future, unrelated, single},
			seriesID,
			mustDate(t, "2024-01-01"),
		)

		require.Len(t, remove, 1)
		assert.Equal(t, future.ID(), remove[0].ID())

		require.Len(t, keep, 3)
		for _, b := range keep {
			assert.NotEqual(t, future.ID(), b.ID())
		}
	})

	t.Run("occurrence on the cutoff date is removed", func(t *testing.T) {
		onCutoff := newTestBooking(t, "S1", "2024-01-01", "alice", &seriesID)
		_, remove := booking.PartitionSeries([]*booking.Booking{onCutoff}, seriesID, mustDate(t, "2024-01-01"))
		require.Len(t, remove, 1)
	})

	t.Run("nothing to remove when all occurrences are past", func(t *testing.T) {
		past := newTestBooking(t, "S1", "2023-12-30", "alice", &seriesID)
		keep, remove := booking.PartitionSeries([]*booking.Booking{past}, seriesID, mustDate(t, "2024-01-01"))
		assert.Empty(t, remove)
		assert.Len(t, keep, 1)
	})
}
