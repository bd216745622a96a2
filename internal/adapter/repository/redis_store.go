package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cv-builder/internal/model"

	"github.com/redis/go-redis/v9"
)

// documentKey is the one record the whole application reads and writes.
const documentKey = "cv:document"

// RedisStore keeps the document as a single JSON value. No TTL: the record
// lives until overwritten.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (*model.Document, error) {
	raw, err := s.client.Get(ctx, documentKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading document from redis: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding stored document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func (s *RedisStore) Save(ctx context.Context, doc *model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := s.client.Set(ctx, documentKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("writing document to redis: %w", err)
	}
	return nil
}
