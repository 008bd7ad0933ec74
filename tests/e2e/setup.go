//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"linkpay/internal/handler"
	"linkpay/internal/handler/api"
	"linkpay/internal/infra/cache"
	infragw "linkpay/internal/infra/gateway"
	"linkpay/internal/infra/qr"
	"linkpay/internal/infra/repository"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/usecase/commands"
	"linkpay/internal/usecase/queries"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containersOnce    sync.Once
	postgresContainer testcontainers.Container
	redisContainer    testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

// FakeGateway emulates the payment gateway REST surface so e2e runs need no
// external credentials.
type FakeGateway struct {
	Server *httptest.Server

	mu       sync.Mutex
	payments map[string]infragw.Payment
	orders   map[string]infragw.MerchantOrder
}

func NewFakeGateway() *FakeGateway {
	g := &FakeGateway{
		payments: make(map[string]infragw.Payment),
		orders:   make(map[string]infragw.MerchantOrder),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkout/preferences", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{
			"id":         "pref-" + uuid.NewString(),
			"init_point": "https://gateway.test/init",
		})
	})
	mux.HandleFunc("GET /v1/payments/search", func(w http.ResponseWriter, r *http.Request) {
		ref := r.URL.Query().Get("external_reference")
		g.mu.Lock()
		defer g.mu.Unlock()
		results := make([]infragw.Payment, 0)
		for _, p := range g.payments {
			if p.ExternalReference == ref {
				results = append(results, p)
			}
		}
		writeJSON(w, map[string]any{"results": results})
	})
	mux.HandleFunc("GET /v1/payments/{id}", func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		p, ok := g.payments[r.PathValue("id")]
		g.mu.Unlock()
		if !ok {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, p)
	})
	mux.HandleFunc("GET /merchant_orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		o, ok := g.orders[r.PathValue("id")]
		g.mu.Unlock()
		if !ok {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, o)
	})

	g.Server = httptest.NewServer(mux)
	return g
}

func (g *FakeGateway) AddPayment(paymentID int64, status, externalReference string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payments[fmt.Sprintf("%d", paymentID)] = infragw.Payment{
		ID:                paymentID,
		Status:            status,
		ExternalReference: externalReference,
	}
}

func (g *FakeGateway) AddApprovedPayment(paymentID int64, externalReference string) {
	g.AddPayment(paymentID, "approved", externalReference)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// SharedSuite wires the whole pipeline against real postgres and redis
// containers and the fake gateway.
type SharedSuite struct {
	suite.Suite
	Pool    *pgxpool.Pool
	Redis   *redis.Client
	Router  *gin.Engine
	Gateway *FakeGateway
	Config  config.Config
	Clock   *clock.FixedClock
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pgInfo, redisInfo := startContainers(t)
	s.Pool = prepareDatabase(t, pgInfo)

	s.Gateway = NewFakeGateway()
	t.Cleanup(s.Gateway.Server.Close)

	cfg := config.NewTestConfig()
	cfg.Gateway.APIBaseURL = s.Gateway.Server.URL
	cfg.Redis.Addr = fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port())
	s.Config = cfg

	redisClient, redisCleanup, err := cache.Connect(cfg.Redis)
	require.NoError(t, err, "failed to connect to redis container")
	t.Cleanup(redisCleanup)
	s.Redis = redisClient

	s.Clock = clock.NewFixedClock(time.Now())
	s.Router = buildRouter(s.Pool, redisClient, cfg, s.Clock)
}

func buildRouter(pool *pgxpool.Pool, redisClient *redis.Client, cfg config.Config, clk clock.Clock) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	pendingRepo := repository.NewPendingPaymentRepository(pool)
	urlRepo := repository.NewUrlRepository(pool)
	legacyRepo := repository.NewLegacyPaymentRepository(pool)
	guard := cache.NewIdempotencyGuard(redisClient, cfg.Shortlink.DedupTTL, clk)
	gwClient := infragw.NewClient(cfg.Gateway)
	verifier := infragw.NewSignatureVerifier(cfg.Gateway, clk, logger)
	encoder := qr.NewEncoder()

	fulfillment := commands.NewFulfillmentUsecase(pendingRepo, urlRepo, encoder, cfg.Shortlink, clk, logger)
	checkout := commands.NewCheckoutUsecase(pendingRepo, urlRepo, legacyRepo, gwClient, cfg.Shortlink, clk, logger)
	webhook := commands.NewWebhookUsecase(guard, gwClient, legacyRepo, fulfillment, logger)
	successReturn := commands.NewSuccessReturnUsecase(pendingRepo, gwClient, fulfillment, logger)
	statusQuery := queries.NewCheckoutStatusQuery(pendingRepo, encoder)
	linkQuery := queries.NewLinkInfoQuery(urlRepo, clk)

	engine := gin.New()
	handler.NewRouter(
		engine, cfg,
		api.NewCheckoutHandler(checkout),
		api.NewWebhookHandler(verifier, webhook),
		api.NewCallbackHandler(successReturn, cfg.Shortlink),
		api.NewStatusHandler(statusQuery),
		api.NewLinkHandler(linkQuery),
	)
	return engine
}

type containerInfo struct {
	Host string
	Port nat.Port
}

func startContainers(t *testing.T) (containerInfo, containerInfo) {
	containersOnce.Do(func() {
		ctx := context.Background()

		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:16-alpine",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to start postgres container: %v", err))
		}
		postgresContainer = pg

		rd, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to start redis container: %v", err))
		}
		redisContainer = rd
	})

	pgInfo, err := containerHostPort(postgresContainer, "5432/tcp")
	require.NoError(t, err, "failed to resolve postgres container address")
	redisInfo, err := containerHostPort(redisContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis container address")

	return pgInfo, redisInfo
}

func containerHostPort(c testcontainers.Container, port nat.Port) (containerInfo, error) {
	ctx := context.Background()
	host, err := c.Host(ctx)
	if err != nil {
		return containerInfo{}, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return containerInfo{}, err
	}
	return containerInfo{Host: host, Port: mapped}, nil
}

// prepareDatabase creates a per-suite database and applies the schema so
// parallel suites do not trip over each other.
func prepareDatabase(t *testing.T, pgInfo containerInfo) *pgxpool.Pool {
	ctx := context.Background()
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, pgInfo.Host, pgInfo.Port.Port())
	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, pgInfo.Host, pgInfo.Port.Port(), dbName)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "failed to open test database connection")
	t.Cleanup(pool.Close)

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "failed to locate setup file")
	schemaPath := filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations", "0001_init.sql")
	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err, "failed to read schema file")
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")

	return pool
}
