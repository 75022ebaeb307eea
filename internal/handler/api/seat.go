package api

import (
	"net/http"

	reqdto "github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/dto/request"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	seatCommands commands.SeatCommands
	seatQueries  queries.SeatQueries
}

func NewSeatHandler(seatCommands commands.SeatCommands, seatQueries queries.SeatQueries) *SeatHandler {
	return &SeatHandler{
		seatCommands: seatCommands,
		seatQueries:  seatQueries,
	}
}

// @Summary List seats
// @Description List all seats on the floor plan
// @Tags seats
// @Produce json
// @Success 200 {array} queries.SeatView
// @Router /seats [get]
func (h *SeatHandler) ListSeats(c *gin.Context) {
	seats, err := h.seatQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, seats)
}

// @Summary Create seat
// @Description Add a seat to the floor plan
// @Tags seats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSeatRequest true "Seat request"
// @Success 201 {object} queries.SeatView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seats [post]
func (h *SeatHandler) CreateSeat(c *gin.Context) {
	var req reqdto.CreateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.seatCommands.CreateSeat(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidSeat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid seat",
			})
		case errs.Is(err, commands.ErrSeatAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Seat already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Delete seat
// @Description Remove a seat and all of its bookings
// @Tags seats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seat ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seats/{id} [delete]
func (h *SeatHandler) DeleteSeat(c *gin.Context) {
	if err := h.seatCommands.DeleteSeat(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errs.Is(err, commands.ErrSeatNotFound):
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

	c.Status(http.StatusNoContent)
}
