package components

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra/readstore"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra/repository"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewTxBeginner,
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewSeatRepository,
			fx.As(new(commands.SeatRepository)),
		),
		fx.Annotate(
			repository.NewCancellationRepository,
			fx.As(new(commands.CancellationRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewSeatReadStore,
			fx.As(new(queries.SeatReadStore)),
		),
		fx.Annotate(
			readstore.NewCancellationReadStore,
			fx.As(new(queries.CancellationReadStore)),
		),
	),
)

func NewTxBeginner(pool *pgxpool.Pool) commands.TxBeginner {
	return pool
}
