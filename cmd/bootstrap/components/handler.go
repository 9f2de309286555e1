package components

import (
	"campsite-reservation/internal/handler"
	"campsite-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
