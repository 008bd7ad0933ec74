package cache

import (
	"context"
	"time"

	"linkpay/internal/infra"
	"linkpay/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const guardKeyPrefix = "webhook:payment:"

// IdempotencyGuard deduplicates gateway webhook deliveries across all
// instances. It is shared state, unlike a process-local map, but still only
// best-effort: the durable pending-payment claim remains the correctness
// boundary.
type IdempotencyGuard struct {
	client *redis.Client
	ttl    time.Duration
	clock  clock.Clock
}

func NewIdempotencyGuard(client *redis.Client, ttl time.Duration, clk clock.Clock) *IdempotencyGuard {
	return &IdempotencyGuard{client: client, ttl: ttl, clock: clk}
}

// Acquire returns true when this caller is the first to see the payment id
// within the TTL window. The stored value is the first-seen timestamp, kept
// only for operator inspection.
func (g *IdempotencyGuard) Acquire(ctx context.Context, paymentID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKeyPrefix+paymentID, g.clock.Now().Unix(), g.ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire webhook dedup key", err, infra.KindCacheFailure)
	}
	return ok, nil
}

// Release frees the key so a gateway retry can reprocess a delivery that
// failed before reaching the durable claim.
func (g *IdempotencyGuard) Release(ctx context.Context, paymentID string) error {
	if err := g.client.Del(ctx, guardKeyPrefix+paymentID).Err(); err != nil {
		return infra.WrapRepoErr("failed to release webhook dedup key", err, infra.KindCacheFailure)
	}
	return nil
}
