package bootstrap

import (
	"context"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra/cache"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/config"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewAnalyticsCache,
			fx.As(new(queries.SummaryCache)),
		),
	),
)

func NewAnalyticsCache(lc fx.Lifecycle, cfg config.Config) *cache.AnalyticsCache {
	c := cache.NewAnalyticsCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
