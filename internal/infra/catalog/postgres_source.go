package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/skillcanon/internal/domain/skills"
	apperrors "github.com/yanqian/skillcanon/pkg/errors"
)

// PostgresSource loads synonym pairs with pgx. The table is expected to look
// like:
//
//	CREATE TABLE skill_synonyms (
//		position  INTEGER NOT NULL,
//		variant   TEXT    NOT NULL UNIQUE,
//		canonical TEXT    NOT NULL
//	);
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource constructs the source. table must be a trusted
// identifier; config validation enforces that.
func NewPostgresSource(pool *pgxpool.Pool, table string) *PostgresSource {
	if table == "" {
		table = "skill_synonyms"
	}
	return &PostgresSource{pool: pool, table: table}
}

// Load implements skills.CatalogSource.
func (s *PostgresSource) Load(ctx context.Context) ([]skills.Pair, error) {
	rows, err := s.pool.Query(ctx, s.query())
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", "query synonyms", err)
	}
	pairs, err := pgx.CollectRows(rows, scanPair)
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", "scan synonyms", err)
	}
	return pairs, nil
}

func (s *PostgresSource) query() string {
	return fmt.Sprintf(`
		SELECT variant, canonical
		FROM %s
		ORDER BY position, variant
	`, pgx.Identifier{s.table}.Sanitize())
}

func scanPair(row pgx.CollectableRow) (skills.Pair, error) {
	var p skills.Pair
	if err := row.Scan(&p.Variant, &p.Canonical); err != nil {
		return skills.Pair{}, err
	}
	return p, nil
}

var _ skills.CatalogSource = (*PostgresSource)(nil)
