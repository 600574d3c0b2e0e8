package cli

import (
	"context"
	"fmt"
	"log/slog"

	rediscache "github.com/SscSPs/papermill_ledger/internal/adapters/cache/redis"
	"github.com/SscSPs/papermill_ledger/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/core/services"
	"github.com/SscSPs/papermill_ledger/internal/platform/config"
	"github.com/SscSPs/papermill_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// app holds the long-lived dependencies shared by every command.
type app struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	redis    goredis.UniversalClient // nil when no cache is configured
	cache    *rediscache.HierarchyCache
	services *portssvc.ServiceContainer
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a := &app{cfg: cfg, pool: pool}

	var cache portsrepo.HierarchyCache
	if cfg.RedisAddr != "" {
		a.redis = rediscache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := a.redis.Ping(ctx).Err(); err != nil {
			// Ledgers still work without the cache; they just resolve hierarchies every time.
			logger.Warn("Redis unreachable, hierarchy cache disabled",
				slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			_ = a.redis.Close()
			a.redis = nil
		} else {
			a.cache = rediscache.NewHierarchyCache(a.redis, cfg.HierarchyCacheTTL)
			cache = a.cache
			logger.Info("Hierarchy cache enabled", slog.String("addr", cfg.RedisAddr))
		}
	}

	a.services = services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), cache)
	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	database.ClosePgxPool(a.pool)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
