package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/adapters/messaging/kafka"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/handlers"
	"github.com/SscSPs/papermill_ledger/internal/middleware"
	"github.com/SscSPs/papermill_ledger/internal/platform/config"
	"github.com/SscSPs/papermill_ledger/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Runs pending migrations, then serves ledgers and reports over HTTP until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !skipMigrations {
			if err := runMigrations(cfg, "up", 0); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		return serve(ctx, a)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on startup")
	cobra.CheckErr(viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port")))
}

func serve(ctx context.Context, a *app) error {
	posthogClient := utils.InitializePosthogClient(a.cfg.PosthogAPIKey, a.cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	rate, err := newRateLimiter(a.cfg, a.redis)
	if err != nil {
		return err
	}

	r, err := newRouter(a.cfg, a.services, rate, posthogClient)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", a.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	})

	if len(a.cfg.KafkaBrokers) > 0 {
		consumer := kafka.NewAccountEventConsumer(a.cfg.KafkaBrokers, a.cfg.KafkaAccountTopic, a.cfg.KafkaGroupID, a.services.Account, logger)
		g.Go(func() error {
			logger.Info("Consuming account events",
				slog.String("topic", a.cfg.KafkaAccountTopic),
				slog.String("group_id", a.cfg.KafkaGroupID))
			if err := consumer.Run(gctx); err != nil {
				// The API keeps serving; hierarchies then expire through the cache TTL.
				logger.Error("Account event consumer stopped", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newRateLimiter shares limits across replicas through Redis when it is available.
func newRateLimiter(cfg *config.Config, client goredis.UniversalClient) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	store := memory.NewStore()
	if client != nil {
		redisStore, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: "mill_ledger_limiter"})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
		store = redisStore
	}
	return limiter.New(store, rate), nil
}

func newRouter(cfg *config.Config, services *portssvc.ServiceContainer, rate *limiter.Limiter, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}
	if rate != nil {
		r.Use(middleware.RateLimit(rate))
	}
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, services)
	return r, nil
}
