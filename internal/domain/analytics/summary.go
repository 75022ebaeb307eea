// Package analytics aggregates booking and cancellation history into
// summary statistics. It is pure computation over caller-supplied records;
// persistence and transport live elsewhere.
package analytics

import (
	"errors"
	"sort"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
)

var ErrInvalidRange = errors.New("from must not be after to")

// DateRange is the inclusive [From, To] window a summary covers.
type DateRange struct {
	From booking.BookingDate
	To   booking.BookingDate
}

// Days is the inclusive length of the range, never below 1.
func (r DateRange) Days() int {
	days := r.From.DaysUntil(r.To) + 1
	if days < 1 {
		return 1
	}
	return days
}

func (r DateRange) Contains(d booking.BookingDate) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// RankEntry is one row of a frequency ranking. Label carries the seat's
// display label for seat rankings and is empty otherwise.
type RankEntry struct {
	Key   string
	Label string
	Count int
}

type Totals struct {
	Active      int
	Created     int
	Canceled    int
	UniqueUsers int
}

type Summary struct {
	Range                DateRange
	Totals               Totals
	TopSeats             []RankEntry
	TopUsers             []RankEntry
	TopCancellations     []RankEntry
	BusiestDays          []RankEntry
	AverageDailyBookings float64
}

const (
	topEntriesLimit  = 5
	busiestDaysLimit = 7
)

// Summarize computes the usage summary over [from, to]. Nil bounds default
// to the min/max date observed across booking dates, booking creation
// dates, cancellation dates, and cancellation timestamps; with no data at
// all the range collapses to today..today.
func Summarize(
	bookings []*booking.Booking,
	seats []*seat.Seat,
	cancellations []booking.CancellationRecord,
	from, to *booking.BookingDate,
	today booking.BookingDate,
) (*Summary, error) {
	r, err := resolveRange(bookings, cancellations, from, to, today)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(seats))
	for _, s := range seats {
		labels[s.ID()] = s.Label()
	}

	var active []*booking.Booking
	created := 0
	for _, b := range bookings {
		if r.Contains(b.Date()) {
			active = append(active, b)
		}
		if r.Contains(booking.DateOf(b.CreatedAt())) {
			created++
		}
	}

	canceled := 0
	cancelsByUser := make(map[string]int)
	for _, c := range cancellations {
		if !r.Contains(booking.DateOf(c.CancelledAt)) {
			continue
		}
		canceled++
		if c.UserName != "" {
			cancelsByUser[c.UserName]++
		}
	}

	bySeat := make(map[string]int)
	byUser := make(map[string]int)
	byDay := make(map[string]int)
	users := make(map[string]struct{})
	for _, b := range active {
		bySeat[b.SeatID()]++
		name := b.UserName().String()
		if name != "" {
			byUser[name]++
			users[name] = struct{}{}
		}
		byDay[b.Date().String()]++
	}

	topSeats := rank(bySeat, topEntriesLimit)
	for i := range topSeats {
		topSeats[i].Label = labels[topSeats[i].Key]
	}

	return &Summary{
		Range: r,
		Totals: Totals{
			Active:      len(active),
			Created:     created,
			Canceled:    canceled,
			UniqueUsers: len(users),
		},
		TopSeats:             topSeats,
		TopUsers:             rank(byUser, topEntriesLimit),
		TopCancellations:     rank(cancelsByUser, topEntriesLimit),
		BusiestDays:          rank(byDay, busiestDaysLimit),
		AverageDailyBookings: float64(len(active)) / float64(r.Days()),
	}, nil
}

func resolveRange(
	bookings []*booking.Booking,
	cancellations []booking.CancellationRecord,
	from, to *booking.BookingDate,
	today booking.BookingDate,
) (DateRange, error) {
	if from != nil && to != nil {
		if from.After(*to) {
			return DateRange{}, ErrInvalidRange
		}
		return DateRange{From: *from, To: *to}, nil
	}

	var observed []booking.BookingDate
	for _, b := range bookings {
		observed = append(observed, b.Date(), booking.DateOf(b.CreatedAt()))
	}
	for _, c := range cancellations {
		observed = append(observed, c.Date, booking.DateOf(c.CancelledAt))
	}

	minDate, maxDate := today, today
	for i, d := range observed {
		if i == 0 {
			minDate, maxDate = d, d
			continue
		}
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	r := DateRange{From: minDate, To: maxDate}
	if from != nil {
		r.From = *from
	}
	if to != nil {
		r.To = *to
	}
	if r.From.After(r.To) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// rank orders keys by descending count, ascending key on ties, truncated
// to limit.
func rank(counts map[string]int, limit int) []RankEntry {
	entries := make([]RankEntry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, RankEntry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
