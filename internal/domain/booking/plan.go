package booking

import "github.com/google/uuid"

// Conflict is the public projection of a booking that collides with a
// requested date.
type Conflict struct {
	Date      BookingDate
	SeatID    string
	BookingID uuid.UUID
	UserName  string
	SeriesID  *uuid.UUID
}

// BookingIndex holds one seat's bookings keyed by date. A seat has at most
// one booking per date, so lookups are direct. Building the index fresh per
// request keeps the plan builder a typed collaborator instead of an implicit
// slice scan.
type BookingIndex map[string]*Booking

func NewBookingIndex(seatID string, bookings []*Booking) BookingIndex {
	index := make(BookingIndex)
	for _, b := range bookings {
		if b.SeatID() != seatID {
			continue
		}
		index[b.Date().String()] = b
	}
	return index
}

func (idx BookingIndex) Lookup(date BookingDate) (*Booking, bool) {
	b, ok := idx[date.String()]
	return b, ok
}

// Plan is the transient result of checking a booking request against a
// seat's existing bookings. TargetDates is always the disjoint union of
// Available and the conflict dates, in expansion order.
type Plan struct {
	SeatID      string
	StartDate   BookingDate
	Spec        *RecurrenceSpec
	TargetDates []BookingDate
	Available   []BookingDate
	Conflicts   []Conflict
}

// BuildPlan expands the recurrence and partitions the target dates into
// available and conflicting in a single linear pass over the index.
func BuildPlan(seatID string, start BookingDate, spec *RecurrenceSpec, index BookingIndex) (*Plan, error) {
	spec = spec.Normalize()
	targets, err := ExpandDates(start, spec)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		SeatID:      seatID,
		StartDate:   start,
		Spec:        spec,
		TargetDates: targets,
		Available:   make([]BookingDate, 0, len(targets)),
	}

	for _, date := range targets {
		existing, ok := index.Lookup(date)
		if !ok {
			plan.Available = append(plan.Available, date)
			continue
		}
		plan.Conflicts = append(plan.Conflicts, Conflict{
			Date:      date,
			SeatID:    seatID,
			BookingID: existing.ID(),
			UserName:  existing.UserName().String(),
			SeriesID:  existing.SeriesID(),
		})
	}

	return plan, nil
}

func (p *Plan) RequestedCount() int {
	return len(p.TargetDates)
}

func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// FullyBlocked reports that every requested date collides, in which case
// even a partial booking is impossible.
func (p *Plan) FullyBlocked() bool {
	return len(p.Available) == 0
}

func (p *Plan) isAvailable(date BookingDate) bool {
	for _, a := range p.Available {
		if a.Equal(date) {
			return true
		}
	}
	return false
}
