// sentiric-phonemask-service/internal/repository/postgres/repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/service/mask"
)

const schema = `
CREATE TABLE IF NOT EXISTS countries (
  iso2 CHAR(2) PRIMARY KEY,
  dial_code VARCHAR(4) NOT NULL,
  name VARCHAR(128) NOT NULL,
  priority INTEGER NOT NULL DEFAULT 0,
  format VARCHAR(64) NULL
);
CREATE INDEX IF NOT EXISTS countries_dial_code_idx ON countries (dial_code);
`

// Querier, Repository'nin ihtiyaç duyduğu pgx yüzeyidir; *pgxpool.Pool bunu karşılar.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var _ Querier = (*pgxpool.Pool)(nil)

type Repository struct {
	db  Querier
	log zerolog.Logger
}

func NewRepository(db Querier, log zerolog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

func (r *Repository) handleError(err error) error {
	return handleError(err)
}

func handleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return mask.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01": // undefined_table
			return fmt.Errorf("%w: %s", mask.ErrTableMissing, pgErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", mask.ErrDatabase, err)
}

// EnsureSchema, countries tablosu yoksa oluşturur (idempotent).
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return r.handleError(err)
	}
	return nil
}

func (r *Repository) ListCountries(ctx context.Context) ([]country.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT iso2, dial_code, name, priority, format FROM countries ORDER BY iso2 ASC`)
	if err != nil {
		return nil, r.handleError(err)
	}
	defer rows.Close()

	var countries []country.Country
	for rows.Next() {
		var c country.Country
		var format sql.NullString
		if err := rows.Scan(&c.ISO2, &c.DialCode, &c.Name, &c.Priority, &format); err != nil {
			return nil, r.handleError(err)
		}
		if format.Valid {
			c.Format = format.String
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handleError(err)
	}

	r.log.Debug().Int("count", len(countries)).Msg("Ülke kayıtları okundu")
	return countries, nil
}

// UpsertCountries, verilen kayıtları tek batch halinde yazar. Yerleşik
// tabloyla veritabanını ilk kez doldurmak için kullanılır.
func (r *Repository) UpsertCountries(ctx context.Context, countries []country.Country) (int64, error) {
	batch := &pgx.Batch{}
	for _, c := range countries {
		var format *string
		if c.Format != "" {
			f := c.Format
			format = &f
		}
		batch.Queue(`INSERT INTO countries (iso2, dial_code, name, priority, format) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (iso2) DO UPDATE SET dial_code = EXCLUDED.dial_code, name = EXCLUDED.name, priority = EXCLUDED.priority, format = EXCLUDED.format`,
			c.ISO2, c.DialCode, c.Name, c.Priority, format)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	var affected int64
	for range countries {
		tag, err := results.Exec()
		if err != nil {
			return affected, r.handleError(err)
		}
		affected += tag.RowsAffected()
	}
	return affected, nil
}

// CountCountries, tablodaki kayıt sayısını döndürür.
func (r *Repository) CountCountries(ctx context.Context) (int, error) {
	rows, err := r.db.Query(ctx, `SELECT count(*) FROM countries`)
	if err != nil {
		return 0, r.handleError(err)
	}
	n, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[int])
	if err != nil {
		return 0, r.handleError(err)
	}
	return n, nil
}
