// Package db owns the PostgreSQL connection pool and schema migrations.
package db

import (
	"context"
	"fmt"

	"github.com/Claudio-Lins/amigo-tvde-backend/config"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPool builds a pgx pool from the database configuration and verifies
// the connection with a ping before returning it.
func ConnectPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	log := logger.GetLogger()

	poolConfig, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infow("Connected to database",
		"host", cfg.Host,
		"database", cfg.Name,
		"maxConns", poolConfig.MaxConns)

	return pool, nil
}
