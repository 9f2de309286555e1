package bootstrap

import (
	"log/slog"

	"campsite-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logBookingPolicy),
)

func logBookingPolicy(cfg config.Config, _ *slog.Logger) {
	r := cfg.Reservation
	slog.Info("booking policy loaded",
		"storage", cfg.Storage.Driver,
		"min_nights", r.MinLength,
		"max_nights", r.MaxLength,
		"min_start_offset_days", r.MinStartOffsetDays,
		"max_start_offset_days", r.MaxStartOffsetDays,
		"timezone", r.TimeZone,
		"cache", cfg.Redis.Enabled,
		"broker", cfg.Broker.Enabled)
}
