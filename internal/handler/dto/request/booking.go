package request

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"
)

type RecurrenceRequest struct {
	Frequency string `json:"frequency" binding:"required"`
	Count     int    `json:"count" binding:"required"`
}

type CreateBookingRequest struct {
	SeatID        string             `json:"seat_id" binding:"required"`
	Date          string             `json:"date" binding:"required"`
	UserName      string             `json:"user_name" binding:"required"`
	Recurrence    *RecurrenceRequest `json:"recurrence,omitempty"`
	SkipConflicts bool               `json:"skip_conflicts,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		SeatID:        r.SeatID,
		Date:          r.Date,
		UserName:      r.UserName,
		Recurrence:    r.Recurrence.toInput(),
		SkipConflicts: r.SkipConflicts,
	}
}

type PreviewBookingRequest struct {
	SeatID     string             `json:"seat_id" binding:"required"`
	Date       string             `json:"date" binding:"required"`
	Recurrence *RecurrenceRequest `json:"recurrence,omitempty"`
}

func (r PreviewBookingRequest) ToParams() queries.PreviewParams {
	return queries.PreviewParams{
		SeatID:     r.SeatID,
		Date:       r.Date,
		Recurrence: r.Recurrence.toInput(),
	}
}

func (r *RecurrenceRequest) toInput() *queries.RecurrenceInput {
	if r == nil {
		return nil
	}
	return &queries.RecurrenceInput{
		Frequency: r.Frequency,
		Count:     r.Count,
	}
}
