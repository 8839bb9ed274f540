package gateway

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"lyberate-settlement/internal/config"
	"lyberate-settlement/internal/domain"
	"lyberate-settlement/internal/usecase"
)

var (
	_ usecase.Store = (*KVRepository)(nil)
	_ usecase.Store = (*GormRepository)(nil)
)

// Open builds the repository for the configured driver. The returned function releases
// the underlying connection.
func Open(ctx context.Context, cfg config.StoreConfig, logger zerolog.Logger) (usecase.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory:
		return NewKVRepository(NewMemoryStore(), logger), noop, nil

	case config.DriverFile:
		store, err := NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return NewKVRepository(store, logger), noop, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("%w: could not reach redis at %s: %w", domain.ErrStorage, cfg.RedisAddr, err)
		}
		return NewKVRepository(NewRedisStore(client, "", logger), logger), client.Close, nil

	case config.DriverPostgres, config.DriverMySQL:
		db, err := OpenDatabase(cfg.Driver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}
		repo, err := NewGormRepository(db, logger)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return repo, sqlDB.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
