package components

import (
	"linkpay/internal/handler"
	"linkpay/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewCallbackHandler,
		api.NewStatusHandler,
		api.NewLinkHandler,
	),
	fx.Invoke(handler.NewRouter),
)
