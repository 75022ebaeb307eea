package components

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/clock"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewSeatCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewSeatQueries,
		queries.NewAnalyticsQueries,
	),
)
