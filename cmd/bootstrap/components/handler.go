package components

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/api"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewSeatHandler,
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
