package components

import (
	"chefpartner/internal/handler"
	"chefpartner/internal/handler/api"
	"chefpartner/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPriceListHandler,
		api.NewCatalogHandler,
		api.NewDiscountRuleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
