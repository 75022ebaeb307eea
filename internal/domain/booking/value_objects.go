package booking

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for booking dates. Dates are timezone-naive
// calendar days; lexical order of the formatted string matches chronological
// order.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// BookingDate is a calendar day with no time-of-day or timezone component.
type BookingDate struct {
	t time.Time
}

func NewBookingDate(value string) (BookingDate, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return BookingDate{}, ErrInvalidDate
	}
	return BookingDate{t: t}, nil
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) BookingDate {
	y, m, d := t.Date()
	return BookingDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d BookingDate) String() string {
	return d.t.Format(DateLayout)
}

func (d BookingDate) Time() time.Time {
	return d.t
}

func (d BookingDate) IsZero() bool {
	return d.t.IsZero()
}

func (d BookingDate) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d BookingDate) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d BookingDate) AddDays(n int) BookingDate {
	return BookingDate{t: d.t.AddDate(0, 0, n)}
}

func (d BookingDate) Before(other BookingDate) bool {
	return d.t.Before(other.t)
}

func (d BookingDate) After(other BookingDate) bool {
	return d.t.After(other.t)
}

func (d BookingDate) Equal(other BookingDate) bool {
	return d.t.Equal(other.t)
}

// DaysUntil returns the number of calendar days from d to other, negative
// when other precedes d.
func (d BookingDate) DaysUntil(other BookingDate) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// NextWeekday returns the first Monday-Friday day strictly after d.
func (d BookingDate) NextWeekday() BookingDate {
	next := d.AddDays(1)
	for next.IsWeekend() {
		next = next.AddDays(1)
	}
	return next
}

const MaxUserNameLength = 120

var (
	ErrEmptyUserName   = errors.New("user name is empty")
	ErrUserNameTooLong = errors.New("user name too long")
)

// UserName is the free-text requester name, trimmed and non-empty.
type UserName struct {
	value string
}

func NewUserName(value string) (UserName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return UserName{}, ErrEmptyUserName
	}
	if len(trimmed) > MaxUserNameLength {
		return UserName{}, ErrUserNameTooLong
	}
	return UserName{value: trimmed}, nil
}

// ReconstructUserName trusts stored values and skips validation.
func ReconstructUserName(value string) UserName {
	return UserName{value: value}
}

func (n UserName) String() string {
	return n.value
}
