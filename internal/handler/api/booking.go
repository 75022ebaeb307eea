package api

import (
	"errors"
	"net/http"

	reqdto "github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/dto/request"
	resdto "github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/dto/response"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a seat for one day or a recurring run of days
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.ConflictResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		var conflictErr *commands.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			c.JSON(http.StatusConflict, resdto.FromConflictError(conflictErr))
		case errs.Is(err, commands.ErrSeatNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seat not found",
			})
		case errs.Is(err, commands.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errs.Is(err, commands.ErrInvalidUserName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid user name",
			})
		case errs.Is(err, commands.ErrInvalidRecurrence):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recurrence",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Preview booking plan
// @Description Resolve a booking request into availability, conflicts and suggestions without writing
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewBookingRequest true "Preview request"
// @Success 200 {object} queries.PreviewView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/preview [post]
func (h *BookingHandler) PreviewBooking(c *gin.Context) {
	var req reqdto.PreviewBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	preview, err := h.bookingQueries.Preview(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrSeatNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seat not found",
			})
		case errs.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errs.Is(err, queries.ErrInvalidRecurrence):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recurrence",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, preview)
}

// @Summary Cancel booking
// @Description Cancel a single booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.bookingCommands.CancelBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{Canceled: result.Booking})
}

// @Summary Cancel series
// @Description Cancel all future bookings of a series; past days stay booked
// @Tags bookings
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} resdto.CancelSeriesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /series/{id} [delete]
func (h *BookingHandler) CancelSeries(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid series ID format",
		})
		return
	}

	result, err := h.bookingCommands.CancelSeries(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSeriesNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Series not found or has no future bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelSeriesResult(result))
}

// @Summary List seat bookings
// @Description List all bookings of one seat ordered by date
// @Tags seats
// @Produce json
// @Param id path string true "Seat ID"
// @Success 200 {object} resdto.SeatBookingsResponse
// @Failure 404 {object} map[string]string
// @Router /seats/{id}/bookings [get]
func (h *BookingHandler) ListSeatBookings(c *gin.Context) {
	bookings, err := h.bookingQueries.ListSeatBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrSeatNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seat not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SeatBookingsResponse{Bookings: bookings})
}
