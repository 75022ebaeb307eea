package bootstrap

import (
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/config"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/queue"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewPublisher(cfg config.Config) *queue.Publisher {
	return queue.NewPublisher(cfg.Queue.URL)
}
