package commands

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeat       = errs.New("invalid seat")
	ErrSeatAlreadyExists = errs.New("seat already exists")
)

type CreateSeatParams struct {
	ID    string
	Label string
	X     float64
	Y     float64
}

type SeatCommands interface {
	CreateSeat(ctx context.Context, params CreateSeatParams) (*queries.SeatView, error)
	DeleteSeat(ctx context.Context, id string) error
}

type seatCommandsImpl struct {
	seats SeatRepository
}

func NewSeatCommands(seats SeatRepository) SeatCommands {
	return &seatCommandsImpl{seats: seats}
}

func (c *seatCommandsImpl) CreateSeat(ctx context.Context, params CreateSeatParams) (*queries.SeatView, error) {
	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	s, err := seat.NewSeat(id, params.Label, params.X, params.Y)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSeat)
	}

	if err := c.seats.Insert(ctx, s); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSeatAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.NewSeatView(s), nil
}

func (c *seatCommandsImpl) DeleteSeat(ctx context.Context, id string) error {
	if err := c.seats.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSeatNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
