package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	Skills  SkillsConfig  `yaml:"skills"`
	Catalog CatalogConfig `yaml:"catalog"`
	Stats   StatsConfig   `yaml:"stats"`
}

// SkillsConfig controls the matcher.
type SkillsConfig struct {
	UseSemantic bool `yaml:"useSemantic"`
}

// CatalogConfig selects where extra synonym pairs come from.
type CatalogConfig struct {
	Source   string         `yaml:"source"`
	Path     string         `yaml:"path"`
	Extend   bool           `yaml:"extend"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// StatsConfig controls canonical skill tallies.
type StatsConfig struct {
	Top    int          `yaml:"top"`
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the stats store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Table    string `yaml:"table"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SKILLS_USE_SEMANTIC"); v != "" {
		cfg.Skills.UseSemantic = parseBool(v)
	}
	if v := os.Getenv("CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("CATALOG_EXTEND"); v != "" {
		cfg.Catalog.Extend = parseBool(v)
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_TABLE"); v != "" {
		cfg.Catalog.Postgres.Table = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("STATS_TOP"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Stats.Top = parsed
		}
	}
	if v := os.Getenv("STATS_VALKEY_ENABLED"); v != "" {
		cfg.Stats.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("STATS_VALKEY_ADDR"); v != "" {
		cfg.Stats.Valkey.Addr = v
	}
	if v := os.Getenv("STATS_VALKEY_PREFIX"); v != "" {
		cfg.Stats.Valkey.Prefix = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		Skills: SkillsConfig{
			UseSemantic: false,
		},
		Catalog: CatalogConfig{
			Source: CatalogBuiltin,
			Extend: true,
			Postgres: PostgresConfig{
				Table:    "skill_synonyms",
				MaxConns: 2,
			},
		},
		Stats: StatsConfig{
			Top: 10,
			Valkey: ValkeyConfig{
				Prefix: "skills",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogBuiltin:
	case CatalogFile:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return errors.New("catalog.path cannot be empty when catalog.source is file")
		}
	case CatalogPostgres:
		if strings.TrimSpace(c.Catalog.Postgres.DSN) == "" {
			return errors.New("catalog.postgres.dsn cannot be empty when catalog.source is postgres")
		}
		if !validIdentifier(c.Catalog.Postgres.Table) {
			return fmt.Errorf("catalog.postgres.table %q is not a valid identifier", c.Catalog.Postgres.Table)
		}
	default:
		return fmt.Errorf("catalog.source %q is not one of builtin, file, postgres", c.Catalog.Source)
	}
	if c.Stats.Top < 0 {
		return errors.New("stats.top cannot be negative")
	}
	if c.Stats.Valkey.Enabled && strings.TrimSpace(c.Stats.Valkey.Addr) == "" {
		return errors.New("stats.valkey.addr cannot be empty when valkey stats are enabled")
	}
	return nil
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
