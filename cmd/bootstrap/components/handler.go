package components

import (
	"cafe-menu-service/internal/handler"
	"cafe-menu-service/internal/handler/api"
	"cafe-menu-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMenuHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
