package skills

import "context"

// CatalogSource loads extra synonym pairs, in match order, at startup.
type CatalogSource interface {
	Load(ctx context.Context) ([]Pair, error)
}

// SkillCount is how often a canonical skill has been seen.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

// StatsStore tallies canonical skills across runs.
type StatsStore interface {
	Increment(ctx context.Context, canonical string) error
	Top(ctx context.Context, limit int) ([]SkillCount, error)
}
