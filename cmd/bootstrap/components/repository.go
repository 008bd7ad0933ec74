package components

import (
	"linkpay/internal/infra/cache"
	repo_impl "linkpay/internal/infra/repository"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/usecase/commands"
	"linkpay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewIdempotencyGuard,
		fx.Annotate(
			repo_impl.NewPendingPaymentRepository,
			fx.As(new(commands.PendingPaymentRepository)),
			fx.As(new(queries.PendingPaymentReader)),
		),
		fx.Annotate(
			repo_impl.NewUrlRepository,
			fx.As(new(commands.UrlRepository)),
			fx.As(new(queries.UrlReader)),
		),
		fx.Annotate(
			repo_impl.NewLegacyPaymentRepository,
			fx.As(new(commands.LegacyPaymentRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}

func NewIdempotencyGuard(client *redis.Client, cfg config.Config, clk clock.Clock) commands.IdempotencyGuard {
	return cache.NewIdempotencyGuard(client, cfg.Shortlink.DedupTTL, clk)
}
