package bootstrap

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CacheModule,
	QueueModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
