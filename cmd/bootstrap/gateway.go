package bootstrap

import (
	"log/slog"

	"linkpay/internal/infra/gateway"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGatewayClient,
		NewSignatureVerifier,
	),
)

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Gateway)
}

func NewSignatureVerifier(cfg config.Config, clk clock.Clock, logger *slog.Logger) *gateway.SignatureVerifier {
	return gateway.NewSignatureVerifier(cfg.Gateway, clk, logger)
}
