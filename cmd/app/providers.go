package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/skillcanon/internal/domain/skills"
	"github.com/yanqian/skillcanon/internal/infra/catalog"
	"github.com/yanqian/skillcanon/internal/infra/config"
	"github.com/yanqian/skillcanon/internal/infra/skillstats"
)

func provideSkillsConfig(cfg *config.Config) skills.Config {
	return skills.Config{
		UseSemantic: cfg.Skills.UseSemantic,
	}
}

// provideCatalogSource returns nil for the builtin catalog. An unreachable
// database also falls back to the builtin catalog.
func provideCatalogSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (skills.CatalogSource, func()) {
	noop := func() {}
	switch cfg.Catalog.Source {
	case config.CatalogFile:
		logger.Info("synonym catalog file enabled", "path", cfg.Catalog.Path, "extend", cfg.Catalog.Extend)
		return catalog.NewFileSource(cfg.Catalog.Path), noop
	case config.CatalogPostgres:
		pool, err := openPostgres(ctx, cfg.Catalog.Postgres)
		if err != nil {
			logger.Error("postgres catalog unavailable, using builtin synonyms", "error", err)
			return nil, noop
		}
		logger.Info("synonym catalog postgres enabled", "table", cfg.Catalog.Postgres.Table, "extend", cfg.Catalog.Extend)
		return catalog.NewPostgresSource(pool, cfg.Catalog.Postgres.Table), pool.Close
	default:
		return nil, noop
	}
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func provideSynonymTable(ctx context.Context, cfg *config.Config, src skills.CatalogSource, logger *slog.Logger) (*skills.Table, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	table, err := skills.LoadTable(loadCtx, src, cfg.Catalog.Extend)
	if err != nil {
		return nil, err
	}
	logger.Debug("synonym table loaded", "pairs", table.Len())
	return table, nil
}

func provideStatsStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (skills.StatsStore, func()) {
	noop := func() {}
	if !cfg.Stats.Valkey.Enabled {
		return skillstats.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Stats.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory stats", "error", err)
		return skillstats.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory stats", "error", err)
		return skillstats.NewMemoryStore(), noop
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory stats", "error", err)
		client.Close()
		return skillstats.NewMemoryStore(), noop
	}
	logger.Info("skill stats valkey store enabled", "addr", cfg.Stats.Valkey.Addr)
	return skillstats.NewValkeyStore(client, cfg.Stats.Valkey.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
