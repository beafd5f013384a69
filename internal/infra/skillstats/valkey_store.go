package skillstats

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/skillcanon/internal/domain/skills"
)

// ValkeyStore keeps skill tallies in a Valkey sorted set so they survive
// across runs and can be shared between workers.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "skills"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Increment implements skills.StatsStore.
func (s *ValkeyStore) Increment(ctx context.Context, canonical string) error {
	if canonical == "" {
		return nil
	}
	return s.client.Do(ctx, s.client.B().Zincrby().Key(s.countsKey()).Increment(1).Member(canonical).Build()).Error()
}

// Top implements skills.StatsStore.
func (s *ValkeyStore) Top(ctx context.Context, limit int) ([]skills.SkillCount, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.countsKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeScores(arr)
}

func decodeScores(arr []valkey.ValkeyMessage) ([]skills.SkillCount, error) {
	out := make([]skills.SkillCount, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
			err    error
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].AsFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array with scores as strings.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].AsFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, skills.SkillCount{Skill: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) countsKey() string {
	return fmt.Sprintf("%s:canonical", s.prefix)
}

var _ skills.StatsStore = (*ValkeyStore)(nil)
