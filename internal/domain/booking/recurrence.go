package booking

import "errors"

const (
	// MaxOccurrences bounds a recurring series to one year of weekly slots.
	MaxOccurrences = 52
)

var (
	ErrInvalidFrequency = errors.New("invalid recurrence frequency")
	ErrInvalidCount     = errors.New("recurrence count out of range")

	// ErrSteppingGuardExceeded means the weekday stepping loop ran past its
	// safety bound. This is a defect, not bad user input.
	ErrSteppingGuardExceeded = errors.New("weekday stepping guard exceeded")
)

// RecurrenceSpec describes how a booking request repeats. A nil spec, or a
// spec with Count 1, is a single-occurrence request.
type RecurrenceSpec struct {
	Frequency Frequency
	Count     int
}

func (s *RecurrenceSpec) Validate() error {
	if s == nil {
		return nil
	}
	if !s.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if s.Count < 1 || s.Count > MaxOccurrences {
		return ErrInvalidCount
	}
	return nil
}

// Normalize collapses single-occurrence specs to nil so that downstream code
// has exactly one representation of "no recurrence".
func (s *RecurrenceSpec) Normalize() *RecurrenceSpec {
	if s == nil || s.Count <= 1 {
		return nil
	}
	return s
}

// ExpandDates turns a start date plus an optional recurrence spec into the
// ordered, duplicate-free list of target dates.
//
// daily steps by one calendar day, weekly by seven. weekday emits only
// Monday-Friday: weekend candidates are skipped by stepping one day at a
// time, so a weekend start date is itself never emitted. The skip loop is
// bounded by count*7+14 iterations; the bound cannot be reached under the
// stepping rule, and breaching it surfaces as ErrSteppingGuardExceeded.
func ExpandDates(start BookingDate, spec *RecurrenceSpec) ([]BookingDate, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.Normalize()
	if spec == nil {
		return []BookingDate{start}, nil
	}

	dates := make([]BookingDate, 0, spec.Count)
	switch spec.Frequency {
	case FrequencyDaily:
		for i := 0; i < spec.Count; i++ {
			dates = append(dates, start.AddDays(i))
		}
	case FrequencyWeekly:
		for i := 0; i < spec.Count; i++ {
			dates = append(dates, start.AddDays(i*7))
		}
	case FrequencyWeekday:
		guard := spec.Count*7 + 14
		current := start
		for iterations := 0; len(dates) < spec.Count; iterations++ {
			if iterations > guard {
				return nil, ErrSteppingGuardExceeded
			}
			if !current.IsWeekend() {
				dates = append(dates, current)
			}
			current = current.AddDays(1)
		}
	default:
		return nil, ErrInvalidFrequency
	}

	return dates, nil
}

// NextOccurrence returns the date that would follow d in a series with the
// given frequency. Used to check run adjacency in suggestions.
func NextOccurrence(d BookingDate, freq Frequency) (BookingDate, error) {
	switch freq {
	case FrequencyDaily:
		return d.AddDays(1), nil
	case FrequencyWeekly:
		return d.AddDays(7), nil
	case FrequencyWeekday:
		return d.NextWeekday(), nil
	default:
		return BookingDate{}, ErrInvalidFrequency
	}
}
