package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	goredis "github.com/redis/go-redis/v9"
)

const keyNamespace = "hierarchy:v1"

// HierarchyCache stores resolved account scopes in Redis as JSON.
type HierarchyCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewHierarchyCache wraps an existing client. A non-positive ttl keeps entries until invalidated.
func NewHierarchyCache(client goredis.UniversalClient, ttl time.Duration) *HierarchyCache {
	return &HierarchyCache{client: client, ttl: ttl}
}

// NewClient creates a single-node client for addr.
func NewClient(addr, password string, db int) goredis.UniversalClient {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

var _ portsrepo.HierarchyCache = (*HierarchyCache)(nil)

func scopeKey(accountID string, level domain.AccountLevel) string {
	return fmt.Sprintf("%s:%s:%d", keyNamespace, accountID, level)
}

// Get returns the cached scope of accountID resolved at level, if any.
func (c *HierarchyCache) Get(ctx context.Context, accountID string, level domain.AccountLevel) (*domain.AccountScope, bool, error) {
	raw, err := c.client.Get(ctx, scopeKey(accountID, level)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached hierarchy of %s: %w", accountID, err)
	}
	scope, err := decodeScope(raw)
	if err != nil {
		// A stale or corrupt entry is treated as a miss and overwritten by the next Set.
		return nil, false, nil
	}
	return scope, true, nil
}

// Set caches scope under its root account and the level it was requested with.
func (c *HierarchyCache) Set(ctx context.Context, scope domain.AccountScope, level domain.AccountLevel) error {
	raw, err := json.Marshal(scope)
	if err != nil {
		return fmt.Errorf("failed to encode hierarchy of %s: %w", scope.Root.AccountID, err)
	}
	if err := c.client.Set(ctx, scopeKey(scope.Root.AccountID, level), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache hierarchy of %s: %w", scope.Root.AccountID, err)
	}
	return nil
}

// Invalidate removes every cached scope rooted at one of accountIDs, whichever level it was
// requested with.
func (c *HierarchyCache) Invalidate(ctx context.Context, accountIDs ...string) error {
	if len(accountIDs) == 0 {
		return nil
	}
	keys := invalidationKeys(accountIDs)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached hierarchies: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *HierarchyCache) Close() error {
	return c.client.Close()
}

func invalidationKeys(accountIDs []string) []string {
	keys := make([]string, 0, len(accountIDs)*4)
	for _, id := range accountIDs {
		for level := domain.LevelUnspecified; level <= domain.LevelLeaf; level++ {
			keys = append(keys, scopeKey(id, level))
		}
	}
	return keys
}

func decodeScope(raw []byte) (*domain.AccountScope, error) {
	var scope domain.AccountScope
	if err := json.Unmarshal(raw, &scope); err != nil {
		return nil, err
	}
	if scope.Root.AccountID == "" || len(scope.AccountIDs) == 0 {
		return nil, errors.New("incomplete cached scope")
	}
	return &scope, nil
}
