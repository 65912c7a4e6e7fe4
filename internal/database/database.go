// sentiric-phonemask-service/internal/database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 15 * time.Second

// NewConnection, ülke tablosu okumaları için küçük bir pgx havuzu açar.
// Yük yalnızca açılışta ve yeniden yüklemelerde oluştuğundan havuz dar tutulur.
func NewConnection(ctx context.Context, url string) (*pgxpool.Pool, error) {
	config, err := ParseConfig(url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("pgx havuzu oluşturulamadı: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("veritabanına ping atılamadı: %w", err)
	}

	return pool, nil
}

// ParseConfig, havuz ayarlarını uygular. Connection pooler'larla uyum için
// prepared statement cache'i yerine simple protocol kullanılır.
func ParseConfig(url string) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL URL parse edilemedi: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 5 * time.Minute
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	return config, nil
}
