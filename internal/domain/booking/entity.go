package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptySeatID = errors.New("seat id is empty")

// Booking is one reserved desk-day. Bookings are immutable once created;
// the only lifecycle transition is deletion, which appends exactly one
// CancellationRecord.
type Booking struct {
	id        uuid.UUID
	seatID    string
	date      BookingDate
	userName  UserName
	createdAt time.Time
	seriesID  *uuid.UUID
}

func NewBooking(
	seatID string,
	date BookingDate,
	userName UserName,
	seriesID *uuid.UUID,
	now time.Time,
) (*Booking, error) {
	if seatID == "" {
		return nil, ErrEmptySeatID
	}

	return &Booking{
		id:        uuid.New(),
		seatID:    seatID,
		date:      date,
		userName:  userName,
		createdAt: now,
		seriesID:  seriesID,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	seatID string,
	date BookingDate,
	userName UserName,
	createdAt time.Time,
	seriesID *uuid.UUID,
) *Booking {
	return &Booking{
		id:        id,
		seatID:    seatID,
		date:      date,
		userName:  userName,
		createdAt: createdAt,
		seriesID:  seriesID,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SeatID() string       { return b.seatID }
func (b *Booking) Date() BookingDate    { return b.date }
func (b *Booking) UserName() UserName   { return b.userName }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) SeriesID() *uuid.UUID { return b.seriesID }

func (b *Booking) InSeries(seriesID uuid.UUID) bool {
	return b.seriesID != nil && *b.seriesID == seriesID
}

// OnOrAfter reports whether the booked day has not yet passed relative to
// the cutoff. Series cancellation only removes such bookings.
func (b *Booking) OnOrAfter(cutoff BookingDate) bool {
	return !b.date.Before(cutoff)
}

// CancellationRecord is the append-only audit entry written for every
// removed booking. It is consumed only by analytics.
type CancellationRecord struct {
	BookingID   uuid.UUID
	SeatID      string
	Date        BookingDate
	UserName    string
	CancelledAt time.Time
	Source      CancellationSource
}

func NewCancellationRecord(b *Booking, source CancellationSource, now time.Time) CancellationRecord {
	return CancellationRecord{
		BookingID:   b.ID(),
		SeatID:      b.SeatID(),
		Date:        b.Date(),
		UserName:    b.UserName().String(),
		CancelledAt: now,
		Source:      source,
	}
}
