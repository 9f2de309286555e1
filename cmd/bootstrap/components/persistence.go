package components

import (
	"campsite-reservation/internal/infra/cache"
	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	cacheModule,
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
			fx.As(new(commands.AvailabilityInvalidator)),
		),
	),
)

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.AvailabilityTTL)
}
