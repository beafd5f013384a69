package skillstats

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/skillcanon/internal/domain/skills"
)

// MemoryStore keeps skill tallies in process memory for tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// Increment implements skills.StatsStore.
func (s *MemoryStore) Increment(_ context.Context, canonical string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	return nil
}

// Top implements skills.StatsStore. Ties are ordered by skill name.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]skills.SkillCount, error) {
	if limit <= 0 {
		limit = 10
	}
	s.mu.RLock()
	out := make([]skills.SkillCount, 0, len(s.counts))
	for skill, count := range s.counts {
		out = append(out, skills.SkillCount{Skill: skill, Count: count})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Skill < out[j].Skill
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ skills.StatsStore = (*MemoryStore)(nil)
