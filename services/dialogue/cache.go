// File: services/dialogue/cache.go
package dialogue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const candidatePrefix = "dialogue:cand:"

// Checkpoint is a cached candidate plus the number of user turns it was
// derived from. Aggregation resumes from the checkpoint instead of rescanning
// the whole history; first-wins merging makes the two equivalent.
type Checkpoint struct {
	Candidate Candidate `json:"candidate"`
	UserTurns int       `json:"userTurns"`
}

// CandidateCache stores per-session aggregation checkpoints.
type CandidateCache interface {
	Get(ctx context.Context, sessionID string) (*Checkpoint, error)
	Set(ctx context.Context, sessionID string, cp *Checkpoint) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisCandidateCache implements CandidateCache on Redis with a TTL.
type RedisCandidateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCandidateCache(client *redis.Client, ttl time.Duration) *RedisCandidateCache {
	return &RedisCandidateCache{client: client, ttl: ttl}
}

func (s *RedisCandidateCache) Get(ctx context.Context, sessionID string) (*Checkpoint, error) {
	key := candidatePrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cp Checkpoint
	if err := json.Unmarshal([]byte(data), &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *RedisCandidateCache) Set(ctx context.Context, sessionID string, cp *Checkpoint) error {
	key := candidatePrefix + sessionID
	b, err := json.Marshal(cp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisCandidateCache) Clear(ctx context.Context, sessionID string) error {
	key := candidatePrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
