package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/voicedoc/clinic-api/internal/dto"
)

const subjectsKey = "catalog:subjects"

type SubjectCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewSubjectCache(client redis.UniversalClient, ttl time.Duration) *SubjectCache {
	return &SubjectCache{client: client, ttl: ttl}
}

func (c *SubjectCache) GetSubjects(ctx context.Context) ([]dto.SubjectDTO, bool, error) {
	raw, err := c.client.Get(ctx, subjectsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var out []dto.SubjectDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (c *SubjectCache) SetSubjects(ctx context.Context, subjects []dto.SubjectDTO) error {
	raw, err := json.Marshal(subjects)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, subjectsKey, raw, c.ttl).Err()
}
