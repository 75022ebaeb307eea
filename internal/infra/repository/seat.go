package repository

import (
	"context"
	"errors"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepository struct {
	pool *pgxpool.Pool
}

func NewSeatRepository(pool *pgxpool.Pool) *SeatRepository {
	return &SeatRepository{pool: pool}
}

func (r *SeatRepository) FindByID(ctx context.Context, id string) (*seat.Seat, error) {
	var (
		label string
		x, y  float64
	)
	err := r.pool.QueryRow(ctx, "SELECT id, label, x, y FROM seats WHERE id = $1", id).
		Scan(&id, &label, &x, &y)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seat by id", err)
	}
	return seat.ReconstructSeat(id, label, x, y), nil
}

func (r *SeatRepository) Insert(ctx context.Context, s *seat.Seat) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO seats (id, label, x, y)
		VALUES ($1, $2, $3, $4)`,
		s.ID(), s.Label(), s.X(), s.Y())
	if err != nil {
		return infra.WrapRepoErr("failed to insert seat", err)
	}
	return nil
}

// Delete also removes the seat's bookings through the FK cascade.
func (r *SeatRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM seats WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete seat", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("seat not found", nil, infra.KindNotFound)
	}
	return nil
}
