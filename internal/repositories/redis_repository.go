package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"microdata/internal/vocabulary"
)

// VocabularyCacheRepository keeps the fetched vocabulary document in Redis
// so it survives across runs.
type VocabularyCacheRepository struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewVocabularyCacheRepository(rdb *redis.Client, ttl time.Duration) *VocabularyCacheRepository {
	return &VocabularyCacheRepository{rdb: rdb, key: vocabulary.CacheKey, ttl: ttl}
}

func (r *VocabularyCacheRepository) Get(ctx context.Context) (*vocabulary.Document, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.key, err)
	}

	var doc vocabulary.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode cached %s: %w", r.key, err)
	}
	return &doc, nil
}

func (r *VocabularyCacheRepository) Set(ctx context.Context, doc *vocabulary.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	return r.rdb.Set(ctx, r.key, raw, r.ttl).Err()
}
