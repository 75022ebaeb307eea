// Package queue defines message payloads exchanged over the message broker
// and the publisher that emits them. Consumers get enough context to log or
// notify without querying the primary database.
package queue

const (
	QueueBookingCreated  = "booking.created"
	QueueBookingCanceled = "booking.canceled"
)

// BookingCreatedEvent is published after a booking request is committed,
// covering both single bookings and whole series.
type BookingCreatedEvent struct {
	SeriesID  string   `json:"series_id,omitempty"`
	SeatID    string   `json:"seat_id"`
	UserName  string   `json:"user_name"`
	Dates     []string `json:"dates"`
	Skipped   []string `json:"skipped,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// BookingCanceledEvent is published per cancellation request; for a series
// cutoff Dates lists every removed occurrence.
type BookingCanceledEvent struct {
	SeriesID    string   `json:"series_id,omitempty"`
	SeatID      string   `json:"seat_id"`
	UserName    string   `json:"user_name"`
	Dates       []string `json:"dates"`
	Source      string   `json:"source"`
	CancelledAt string   `json:"cancelled_at"`
}
