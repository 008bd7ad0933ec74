package components

import (
	"linkpay/internal/infra/gateway"
	"linkpay/internal/infra/qr"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/usecase/commands"
	"linkpay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.ShortlinkConfig {
		return cfg.Shortlink
	},
	func(c *gateway.Client) commands.PaymentGateway {
		return c
	},
	fx.Annotate(
		qr.NewEncoder,
		fx.As(new(commands.QRCodeEncoder)),
		fx.As(new(queries.QRCodeEncoder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUsecase,
		commands.NewFulfillmentUsecase,
		commands.NewWebhookUsecase,
		commands.NewSuccessReturnUsecase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutStatusQuery,
		queries.NewLinkInfoQuery,
	),
)
