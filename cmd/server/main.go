package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"runway.app/api/common/id"
	"runway.app/api/common/logger"
	"runway.app/api/common/otel"
	"runway.app/api/common/password"
	"runway.app/api/common/retry"
	"runway.app/api/common/token"
	"runway.app/api/core/config"
	"runway.app/api/core/db"
	"runway.app/api/internal/export"
	"runway.app/api/internal/http/middleware"
	httprouter "runway.app/api/internal/http/router"
	"runway.app/api/internal/service"
	"runway.app/api/internal/store"
	"runway.app/api/internal/store/memstore"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "runway api starting", "env", cfg.Env, "store", cfg.Store, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err, "node_id", cfg.NodeID)
		os.Exit(1)
	}

	startup, cancelStartup := context.WithTimeout(ctx, cfg.StartupTimeout+5*time.Second)
	defer cancelStartup()
	retryCfg := retry.DefaultConfig(cfg.StartupTimeout)

	var (
		stores      store.Provider
		txRunner    service.TxRunner
		revocations store.RevocationStore
	)

	switch cfg.Store {
	case config.StoreBackendMemory:
		mem := memstore.New()
		stores, txRunner = mem.Stores(), mem
		slog.WarnContext(ctx, "using in-memory store; data is lost on restart")
	default:
		if cfg.DB.AutoMigrate {
			err := retry.Connect(startup, "postgres migrations", retryCfg, func(context.Context) error {
				return db.RunMigrations(cfg.DB.DSN)
			})
			if err != nil {
				slog.ErrorContext(ctx, "failed to run migrations", "error", err)
				os.Exit(1)
			}
			slog.InfoContext(ctx, "migrations applied")
		}

		var database *db.DB
		err := retry.Connect(startup, "postgres", retryCfg, func(ctx context.Context) error {
			var err error
			database, err = db.New(ctx, cfg.DB)
			return err
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()
		slog.InfoContext(ctx, "database connected")

		stores, txRunner = store.NewStores(database.Queries()), service.NewTxRunner(database)
	}

	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}

		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()

		err = retry.Connect(startup, "redis", retryCfg, func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "redis connected")
		revocations = store.NewRedisRevocationStore(redisClient)
	} else {
		slog.WarnContext(ctx, "REDIS_URL not set; logged-out tokens are only tracked in this process")
		revocations = memstore.NewRevocationStore()
	}

	tokens, err := token.NewManager(token.Config{
		Secret: cfg.Auth.TokenSecret,
		Issuer: cfg.Auth.TokenIssuer,
		TTL:    cfg.Auth.TokenTTL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure tokens", "error", err)
		os.Exit(1)
	}

	formatter, err := export.NewAmountFormatter(cfg.Export.Locale, cfg.Export.DefaultCurrency)
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure export formatting", "error", err)
		os.Exit(1)
	}

	services := service.NewServices(service.ServicesConfig{
		Stores:          stores,
		TxRunner:        txRunner,
		Revocations:     revocations,
		Tokens:          tokens,
		Passwords:       password.NewHasher(0),
		Formatter:       formatter,
		Renderer:        export.NewRenderer(),
		DefaultCurrency: cfg.Export.DefaultCurrency,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → RequestID tags logs → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services)

	return router
}

const banner = `
██████╗ ██╗   ██╗███╗   ██╗██╗    ██╗ █████╗ ██╗   ██╗
██╔══██╗██║   ██║████╗  ██║██║    ██║██╔══██╗╚██╗ ██╔╝
██████╔╝██║   ██║██╔██╗ ██║██║ █╗ ██║███████║ ╚████╔╝
██╔══██╗██║   ██║██║╚██╗██║██║███╗██║██╔══██║  ╚██╔╝
██║  ██║╚██████╔╝██║ ╚████║╚███╔███╔╝██║  ██║   ██║
╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝ ╚══╝╚══╝ ╚═╝  ╚═╝   ╚═╝
`
