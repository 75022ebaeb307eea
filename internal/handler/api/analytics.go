package api

import (
	"net/http"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsQueries queries.AnalyticsQueries
}

func NewAnalyticsHandler(analyticsQueries queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsQueries: analyticsQueries}
}

// @Summary Booking summary
// @Description Aggregate booking activity over a date range; defaults to the observed range
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} queries.SummaryView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	from := optionalQuery(c, "from")
	to := optionalQuery(c, "to")

	view, err := h.analyticsQueries.Summary(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errs.Is(err, queries.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Range start must not be after range end",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func optionalQuery(c *gin.Context, key string) *string {
	value, exists := c.GetQuery(key)
	if !exists || value == "" {
		return nil
	}
	return &value
}
