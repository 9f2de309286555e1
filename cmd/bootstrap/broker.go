package bootstrap

import (
	"log/slog"

	"campsite-reservation/internal/infra/broker"
	"campsite-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(cfg config.Config) broker.Publisher {
	if !cfg.Broker.Enabled {
		slog.Info("broker disabled, reservation events are written to the log")
		return broker.NewLogPublisher()
	}
	return broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
}
