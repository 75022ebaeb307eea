//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/api"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsQueries struct {
	view *queries.SummaryView
	err  error

	gotFrom *string
	gotTo   *string
}

func (s *stubAnalyticsQueries) Summary(_ context.Context, from, to *string) (*queries.SummaryView, error) {
	s.gotFrom = from
	s.gotTo = to
	return s.view, s.err
}

func newAnalyticsRouter(stub *stubAnalyticsQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/analytics/summary", api.NewAnalyticsHandler(stub).Summary)
	return engine
}

func TestAnalyticsSummary(t *testing.T) {
	t.Run("forwards optional range and returns view", func(t *testing.T) {
		stub := &stubAnalyticsQueries{view: &queries.SummaryView{
			From: "2024-06-01",
			To:   "2024-06-30",
		}}
		engine := newAnalyticsRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/analytics/summary?from=2024-06-01&to=2024-06-30", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, stub.gotFrom)
		require.NotNil(t, stub.gotTo)
		assert.Equal(t, "2024-06-01", *stub.gotFrom)
		assert.Equal(t, "2024-06-30", *stub.gotTo)

		var got queries.SummaryView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "2024-06-01", got.From)
	})

	t.Run("omitted query params are passed as nil", func(t *testing.T) {
		stub := &stubAnalyticsQueries{view: &queries.SummaryView{}}
		engine := newAnalyticsRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, stub.gotFrom)
		assert.Nil(t, stub.gotTo)
	})

	t.Run("malformed date maps to 400", func(t *testing.T) {
		stub := &stubAnalyticsQueries{err: errs.Mark(errs.New("parsing time"), queries.ErrInvalidDate)}
		engine := newAnalyticsRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/analytics/summary?from=06-01-2024", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid date")
	})

	t.Run("inverted range maps to 400", func(t *testing.T) {
		stub := &stubAnalyticsQueries{err: queries.ErrInvalidRange}
		engine := newAnalyticsRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/analytics/summary?from=2024-06-30&to=2024-06-01", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
