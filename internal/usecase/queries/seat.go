package queries

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
)

type SeatQueries interface {
	List(ctx context.Context) ([]*SeatView, error)
}

type seatQueriesImpl struct {
	seats SeatReadStore
}

func NewSeatQueries(seats SeatReadStore) SeatQueries {
	return &seatQueriesImpl{seats: seats}
}

func (q *seatQueriesImpl) List(ctx context.Context) ([]*SeatView, error) {
	seats, err := q.seats.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := make([]*SeatView, len(seats))
	for i, s := range seats {
		views[i] = NewSeatView(s)
	}
	return views, nil
}
