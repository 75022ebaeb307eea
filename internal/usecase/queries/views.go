package queries

import (
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/analytics"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID        uuid.UUID  `json:"id"`
	SeatID    string     `json:"seat_id"`
	Date      string     `json:"date"`
	UserName  string     `json:"user_name"`
	CreatedAt time.Time  `json:"created_at"`
	SeriesID  *uuid.UUID `json:"series_id,omitempty"`
}

type ConflictView struct {
	Date      string     `json:"date"`
	SeatID    string     `json:"seat_id"`
	BookingID uuid.UUID  `json:"booking_id"`
	UserName  string     `json:"user_name"`
	SeriesID  *uuid.UUID `json:"series_id,omitempty"`
}

type RecurrenceView struct {
	Frequency string `json:"frequency"`
	Count     int    `json:"count"`
}

type ShortenView struct {
	Count int      `json:"count"`
	Dates []string `json:"dates"`
}

type ContiguousBlockView struct {
	StartDate string   `json:"start_date"`
	Count     int      `json:"count"`
	Dates     []string `json:"dates"`
}

type AdjustStartView struct {
	StartDate string   `json:"start_date"`
	Dates     []string `json:"dates"`
}

type SuggestionsView struct {
	Shorten         *ShortenView         `json:"shorten,omitempty"`
	ContiguousBlock *ContiguousBlockView `json:"contiguous_block,omitempty"`
	AdjustStart     *AdjustStartView     `json:"adjust_start,omitempty"`
}

type PreviewView struct {
	SeatID         string          `json:"seat_id"`
	StartDate      string          `json:"start_date"`
	RequestedCount int             `json:"requested_count"`
	RequestedDates []string        `json:"requested_dates"`
	Recurrence     *RecurrenceView `json:"recurrence,omitempty"`
	Available      []string        `json:"available"`
	Conflicts      []ConflictView  `json:"conflicts"`
	Suggestions    SuggestionsView `json:"suggestions"`
}

type SeatView struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type RankEntryView struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Count int    `json:"count"`
}

type SummaryView struct {
	From                 string          `json:"from"`
	To                   string          `json:"to"`
	Active               int             `json:"active"`
	Created              int             `json:"created"`
	Canceled             int             `json:"canceled"`
	UniqueUsers          int             `json:"unique_users"`
	TopSeats             []RankEntryView `json:"top_seats"`
	TopUsers             []RankEntryView `json:"top_users"`
	TopCancellations     []RankEntryView `json:"top_cancellations"`
	BusiestDays          []RankEntryView `json:"busiest_days"`
	AverageDailyBookings float64         `json:"average_daily_bookings"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:        b.ID(),
		SeatID:    b.SeatID(),
		Date:      b.Date().String(),
		UserName:  b.UserName().String(),
		CreatedAt: b.CreatedAt(),
		SeriesID:  b.SeriesID(),
	}
}

func NewConflictView(c booking.Conflict) ConflictView {
	return ConflictView{
		Date:      c.Date.String(),
		SeatID:    c.SeatID,
		BookingID: c.BookingID,
		UserName:  c.UserName,
		SeriesID:  c.SeriesID,
	}
}

func NewSeatView(s *seat.Seat) *SeatView {
	return &SeatView{
		ID:    s.ID(),
		Label: s.Label(),
		X:     s.X(),
		Y:     s.Y(),
	}
}

func NewPreviewView(plan *booking.Plan, suggestions *booking.Suggestions) *PreviewView {
	view := &PreviewView{
		SeatID:         plan.SeatID,
		StartDate:      plan.StartDate.String(),
		RequestedCount: plan.RequestedCount(),
		RequestedDates: dateStrings(plan.TargetDates),
		Available:      dateStrings(plan.Available),
		Conflicts:      make([]ConflictView, 0, len(plan.Conflicts)),
	}
	if plan.Spec != nil {
		view.Recurrence = &RecurrenceView{
			Frequency: plan.Spec.Frequency.String(),
			Count:     plan.Spec.Count,
		}
	}
	for _, c := range plan.Conflicts {
		view.Conflicts = append(view.Conflicts, NewConflictView(c))
	}
	view.Suggestions = newSuggestionsView(suggestions)
	return view
}

func newSuggestionsView(s *booking.Suggestions) SuggestionsView {
	var view SuggestionsView
	if s == nil {
		return view
	}
	if s.Shorten != nil {
		view.Shorten = &ShortenView{
			Count: s.Shorten.Count,
			Dates: dateStrings(s.Shorten.Dates),
		}
	}
	if s.ContiguousBlock != nil {
		view.ContiguousBlock = &ContiguousBlockView{
			StartDate: s.ContiguousBlock.StartDate.String(),
			Count:     s.ContiguousBlock.Count,
			Dates:     dateStrings(s.ContiguousBlock.Dates),
		}
	}
	if s.AdjustStart != nil {
		view.AdjustStart = &AdjustStartView{
			StartDate: s.AdjustStart.StartDate.String(),
			Dates:     dateStrings(s.AdjustStart.Dates),
		}
	}
	return view
}

func NewSummaryView(s *analytics.Summary) *SummaryView {
	return &SummaryView{
		From:                 s.Range.From.String(),
		To:                   s.Range.To.String(),
		Active:               s.Totals.Active,
		Created:              s.Totals.Created,
		Canceled:             s.Totals.Canceled,
		UniqueUsers:          s.Totals.UniqueUsers,
		TopSeats:             rankViews(s.TopSeats),
		TopUsers:             rankViews(s.TopUsers),
		TopCancellations:     rankViews(s.TopCancellations),
		BusiestDays:          rankViews(s.BusiestDays),
		AverageDailyBookings: s.AverageDailyBookings,
	}
}

func rankViews(entries []analytics.RankEntry) []RankEntryView {
	views := make([]RankEntryView, len(entries))
	for i, e := range entries {
		views[i] = RankEntryView{Key: e.Key, Label: e.Label, Count: e.Count}
	}
	return views
}

func dateStrings(dates []booking.BookingDate) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
