package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// JobsCache keeps listing pages in Redis for a short TTL so repeated board
// views do not hammer the backend.
// Key format: jobs:<page>:<page_size>:<q>:<country>:<contract_type>
type JobsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewJobsCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *JobsCache {
	return &JobsCache{client: client, ttl: ttl, log: log}
}

// Get reports a cached page for the filter. Any Redis failure counts as a
// miss; the cache never breaks a listing request.
func (c *JobsCache) Get(ctx context.Context, filter domain.JobFilter, pageSize int) (*domain.JobsResponse, bool) {
	raw, err := c.client.Get(ctx, c.key(filter, pageSize)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("jobs cache read failed")
		return nil, false
	}

	var resp domain.JobsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.log.Warn().Err(err).Msg("dropping malformed jobs cache entry")
		_ = c.client.Del(ctx, c.key(filter, pageSize)).Err()
		return nil, false
	}
	return &resp, true
}

// Set stores a listing page (expires after the configured TTL).
func (c *JobsCache) Set(ctx context.Context, filter domain.JobFilter, pageSize int, resp *domain.JobsResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		c.log.Warn().Err(err).Msg("jobs cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(filter, pageSize), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("jobs cache write failed")
	}
}

func (c *JobsCache) key(filter domain.JobFilter, pageSize int) string {
	return fmt.Sprintf("jobs:%d:%d:%s:%s:%s", filter.Page, pageSize, filter.Q, filter.Country, filter.ContractType)
}
