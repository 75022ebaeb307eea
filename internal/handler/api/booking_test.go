//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/api"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	createResult *commands.CreateBookingResult
	createErr    error
	cancelResult *commands.CancelBookingResult
	cancelErr    error
	seriesResult *commands.CancelSeriesResult
	seriesErr    error

	createParams *commands.CreateBookingParams
}

func (s *stubBookingCommands) CreateBooking(_ context.Context, params commands.CreateBookingParams) (*commands.CreateBookingResult, error) {
	s.createParams = &params
	return s.createResult, s.createErr
}

func (s *stubBookingCommands) CancelBooking(_ context.Context, _ uuid.UUID) (*commands.CancelBookingResult, error) {
	return s.cancelResult, s.cancelErr
}

func (s *stubBookingCommands) CancelSeries(_ context.Context, _ uuid.UUID) (*commands.CancelSeriesResult, error) {
	return s.seriesResult, s.seriesErr
}

type stubBookingQueries struct {
	preview     *queries.PreviewView
	previewErr  error
	bookings    []*queries.BookingView
	bookingsErr error
}

func (s *stubBookingQueries) Preview(_ context.Context, _ queries.PreviewParams) (*queries.PreviewView, error) {
	return s.preview, s.previewErr
}

func (s *stubBookingQueries) ListSeatBookings(_ context.Context, _ string) ([]*queries.BookingView, error) {
	return s.bookings, s.bookingsErr
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
	queries  *stubBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	handler := api.NewBookingHandler(s.commands, s.queries)

	s.router.POST("/bookings", handler.CreateBooking)
	s.router.POST("/bookings/preview", handler.PreviewBooking)
	s.router.DELETE("/bookings/:id", handler.CancelBooking)
	s.router.DELETE("/series/:id", handler.CancelSeries)
	s.router.GET("/seats/:id/bookings", handler.ListSeatBookings)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleBookingView(date string) *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		SeatID:    "S1",
		Date:      date,
		UserName:  "alice",
		CreatedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("single booking created", func() {
		s.commands.createErr = nil
		s.commands.createResult = &commands.CreateBookingResult{
			Single: sampleBookingView("2024-06-10"),
		}

		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id":   "S1",
			"date":      "2024-06-10",
			"user_name": "alice",
		})

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"booking"`)
		s.Contains(rec.Body.String(), "2024-06-10")
	})

	s.Run("recurrence forwarded to the use case", func() {
		s.commands.createResult = &commands.CreateBookingResult{
			Single: sampleBookingView("2024-06-10"),
		}

		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id":   "S1",
			"date":      "2024-06-10",
			"user_name": "alice",
			"recurrence": map[string]any{
				"frequency": "weekly",
				"count":     4,
			},
			"skip_conflicts": true,
		})

		s.Equal(http.StatusCreated, rec.Code)
		s.Require().NotNil(s.commands.createParams)
		s.Require().NotNil(s.commands.createParams.Recurrence)
		s.Equal("weekly", s.commands.createParams.Recurrence.Frequency)
		s.Equal(4, s.commands.createParams.Recurrence.Count)
		s.True(s.commands.createParams.SkipConflicts)
	})

	s.Run("conflict yields 409 with suggestions payload", func() {
		s.commands.createResult = nil
		s.commands.createErr = &commands.ConflictError{
			Message: "requested dates conflict with existing bookings",
			Conflicts: []queries.ConflictView{
				{Date: "2024-06-12", SeatID: "S1", BookingID: uuid.New(), UserName: "bob"},
			},
			Preview: &queries.PreviewView{
				SeatID:    "S1",
				StartDate: "2024-06-10",
				Suggestions: queries.SuggestionsView{
					Shorten: &queries.ShortenView{Count: 2, Dates: []string{"2024-06-10", "2024-06-11"}},
				},
			},
		}

		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id":   "S1",
			"date":      "2024-06-10",
			"user_name": "alice",
		})

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"message"`)
		s.Contains(rec.Body.String(), `"conflicts"`)
		s.Contains(rec.Body.String(), `"shorten"`)
	})

	s.Run("partial series payload carries conflicts and preview", func() {
		seriesID := uuid.New()
		s.commands.createErr = nil
		s.commands.createResult = &commands.CreateBookingResult{
			SeriesID: &seriesID,
			Created: []*queries.BookingView{
				sampleBookingView("2024-06-10"),
				sampleBookingView("2024-06-11"),
			},
			Skipped: []string{"2024-06-12"},
			Conflicts: []queries.ConflictView{
				{Date: "2024-06-12", SeatID: "S1", BookingID: uuid.New(), UserName: "bob"},
			},
			RequestedCount: 3,
			Preview: &queries.PreviewView{
				SeatID:    "S1",
				StartDate: "2024-06-10",
				Suggestions: queries.SuggestionsView{
					Shorten: &queries.ShortenView{Count: 2, Dates: []string{"2024-06-10", "2024-06-11"}},
				},
			},
		}

		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id":        "S1",
			"date":           "2024-06-10",
			"user_name":      "alice",
			"recurrence":     map[string]any{"frequency": "daily", "count": 3},
			"skip_conflicts": true,
		})

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Contains(body, "conflicts")
		s.Contains(body, "preview")
		s.Contains(body, "skipped")
		s.Equal(seriesID.String(), body["series_id"])
	})

	s.Run("missing seat", func() {
		s.commands.createResult = nil
		s.commands.createErr = commands.ErrSeatNotFound

		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id":   "S9",
			"date":      "2024-06-10",
			"user_name": "alice",
		})

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed body", func() {
		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id": "S1",
		})

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid recurrence", func() {
		s.commands.createResult = nil
		s.commands.createErr = errs.Mark(errs.New("recurrence count out of range"), commands.ErrInvalidRecurrence)

		rec := s.doJSON(http.MethodPost, "/bookings", map[string]any{
			"seat_id":   "S1",
			"date":      "2024-06-10",
			"user_name": "alice",
			"recurrence": map[string]any{
				"frequency": "monthly",
				"count":     4,
			},
		})

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestPreviewBooking() {
	s.Run("returns the resolved plan", func() {
		s.queries.preview = &queries.PreviewView{
			SeatID:    "S1",
			StartDate: "2024-06-10",
			Available: []string{"2024-06-10", "2024-06-11"},
			Conflicts: []queries.ConflictView{},
		}

		rec := s.doJSON(http.MethodPost, "/bookings/preview", map[string]any{
			"seat_id": "S1",
			"date":    "2024-06-10",
		})

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"available"`)
	})

	s.Run("missing seat", func() {
		s.queries.preview = nil
		s.queries.previewErr = queries.ErrSeatNotFound

		rec := s.doJSON(http.MethodPost, "/bookings/preview", map[string]any{
			"seat_id": "S9",
			"date":    "2024-06-10",
		})

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("cancels by id", func() {
		s.commands.cancelResult = &commands.CancelBookingResult{
			Booking: sampleBookingView("2024-06-12"),
		}

		rec := s.doJSON(http.MethodDelete, "/bookings/"+uuid.NewString(), nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"canceled"`)
	})

	s.Run("invalid id format", func() {
		rec := s.doJSON(http.MethodDelete, "/bookings/not-a-uuid", nil)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown booking", func() {
		s.commands.cancelResult = nil
		s.commands.cancelErr = commands.ErrBookingNotFound

		rec := s.doJSON(http.MethodDelete, "/bookings/"+uuid.NewString(), nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelSeries() {
	s.Run("removes future bookings", func() {
		seriesID := uuid.New()
		s.commands.seriesResult = &commands.CancelSeriesResult{
			SeriesID: seriesID,
			Removed: []*queries.BookingView{
				sampleBookingView("2024-06-12"),
				sampleBookingView("2024-06-13"),
			},
		}

		rec := s.doJSON(http.MethodDelete, "/series/"+seriesID.String(), nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), seriesID.String())
	})

	s.Run("nothing left to remove", func() {
		s.commands.seriesResult = nil
		s.commands.seriesErr = commands.ErrSeriesNotFound

		rec := s.doJSON(http.MethodDelete, "/series/"+uuid.NewString(), nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListSeatBookings() {
	s.Run("lists bookings", func() {
		s.queries.bookings = []*queries.BookingView{sampleBookingView("2024-06-10")}

		rec := s.doJSON(http.MethodGet, "/seats/S1/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"bookings"`)
	})

	s.Run("missing seat", func() {
		s.queries.bookings = nil
		s.queries.bookingsErr = queries.ErrSeatNotFound

		rec := s.doJSON(http.MethodGet, "/seats/S9/bookings", nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
