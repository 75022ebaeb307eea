package booking

import "github.com/google/uuid"

// PartitionSeries splits bookings into the set to keep and the set to
// remove for a series cancellation. A booking is removed iff it belongs to
// the series and its date is on or after the cutoff: past occurrences
// already happened and are preserved.
func PartitionSeries(bookings []*Booking, seriesID uuid.UUID, cutoff BookingDate) (keep, remove []*Booking) {
	keep = make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.InSeries(seriesID) && b.OnOrAfter(cutoff) {
			remove = append(remove, b)
			continue
		}
		keep = append(keep, b)
	}
	return keep, remove
}
