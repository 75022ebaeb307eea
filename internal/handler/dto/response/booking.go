package response

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"
)

// CreateBookingResponse collapses to the single booking fields when no
// recurrence was requested; series fields are set otherwise.
type CreateBookingResponse struct {
	Booking        *queries.BookingView   `json:"booking,omitempty"`
	SeriesID       string                 `json:"series_id,omitempty"`
	Created        []*queries.BookingView `json:"created,omitempty"`
	Skipped        []string               `json:"skipped,omitempty"`
	Conflicts      []queries.ConflictView `json:"conflicts,omitempty"`
	RequestedCount int                    `json:"requested_count,omitempty"`
	Preview        *queries.PreviewView   `json:"preview,omitempty"`
}

func FromCreateBookingResult(result *commands.CreateBookingResult) CreateBookingResponse {
	if result.Single != nil {
		return CreateBookingResponse{Booking: result.Single}
	}

	resp := CreateBookingResponse{
		Created:        result.Created,
		Skipped:        result.Skipped,
		Conflicts:      result.Conflicts,
		RequestedCount: result.RequestedCount,
		Preview:        result.Preview,
	}
	if result.SeriesID != nil {
		resp.SeriesID = result.SeriesID.String()
	}
	return resp
}

// ConflictResponse is the 409 payload; it carries the preview so the
// client can render the suggestions without a second request.
type ConflictResponse struct {
	Message   string                 `json:"message"`
	Conflicts []queries.ConflictView `json:"conflicts"`
	Preview   *queries.PreviewView   `json:"preview,omitempty"`
}

func FromConflictError(err *commands.ConflictError) ConflictResponse {
	return ConflictResponse{
		Message:   err.Message,
		Conflicts: err.Conflicts,
		Preview:   err.Preview,
	}
}

type CancelBookingResponse struct {
	Canceled *queries.BookingView `json:"canceled"`
}

type CancelSeriesResponse struct {
	SeriesID string                 `json:"series_id"`
	Removed  []*queries.BookingView `json:"removed"`
}

func FromCancelSeriesResult(result *commands.CancelSeriesResult) CancelSeriesResponse {
	return CancelSeriesResponse{
		SeriesID: result.SeriesID.String(),
		Removed:  result.Removed,
	}
}

type SeatBookingsResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
}
