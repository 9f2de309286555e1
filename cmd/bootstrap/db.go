package bootstrap

import (
	"context"
	"log/slog"

	"campsite-reservation/internal/infra/db"
	"campsite-reservation/internal/infra/memory"
	"campsite-reservation/internal/infra/uow"
	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config) (shared.UnitOfWork, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		slog.Warn("using in-memory storage; reservations are lost on restart")
		return memory.NewStore(), nil
	default:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		return uow.NewPostgresUoW(pool), nil
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
