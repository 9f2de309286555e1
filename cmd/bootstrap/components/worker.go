package components

import (
	"context"

	"campsite-reservation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewEventRelay,
	),
	fx.Invoke(registerEventRelay),
)

func registerEventRelay(lc fx.Lifecycle, relay *worker.EventRelay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
