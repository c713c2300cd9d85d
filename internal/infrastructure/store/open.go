// Package store picks and opens the user store adapter named by config.
package store

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/accounts/config"
	"github.com/ErlanBelekov/accounts/internal/infrastructure/memory"
	"github.com/ErlanBelekov/accounts/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/accounts/internal/infrastructure/sqlite"
	"github.com/ErlanBelekov/accounts/internal/repository"
)

// Open connects the configured user store and returns it with its close func.
func Open(ctx context.Context, cfg *config.Config) (repository.UserRepository, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{MaxConns: 10, MinConns: 1})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(pool), pool.Close, nil
	case "memory":
		return memory.NewUserRepository(), func() {}, nil
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUserRepository(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
