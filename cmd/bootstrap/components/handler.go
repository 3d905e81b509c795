package components

import (
	"github.com/Harishsingh-01/roomeaseserver/internal/handler"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/api"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewContactHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
