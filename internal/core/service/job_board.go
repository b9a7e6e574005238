package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/api/metrics"
	"github.com/synergyvets/careers-site/internal/core/domain"
	"github.com/synergyvets/careers-site/internal/core/ports"
)

const defaultPageSize = 9

// JobBoard serves the public job listing and detail views, reading through a
// short-TTL cache on the listing path. The cache is optional; passing nil
// disables it.
type JobBoard struct {
	client   ports.JobsClient
	cache    ports.JobsCache
	pageSize int
	log      zerolog.Logger
}

func NewJobBoard(client ports.JobsClient, cache ports.JobsCache, pageSize int, log zerolog.Logger) *JobBoard {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &JobBoard{client: client, cache: cache, pageSize: pageSize, log: log}
}

// List fetches one listing page for the given filter, cache first.
func (b *JobBoard) List(ctx context.Context, filter domain.JobFilter) (*domain.JobsResponse, error) {
	if b.cache != nil {
		if resp, ok := b.cache.Get(ctx, filter, b.pageSize); ok {
			metrics.JobCacheTotal.WithLabelValues("hit").Inc()
			return resp, nil
		}
		metrics.JobCacheTotal.WithLabelValues("miss").Inc()
	}

	resp, err := b.client.List(ctx, filter, b.pageSize)
	if err != nil {
		metrics.JobRequestsTotal.WithLabelValues("list", "error").Inc()
		return nil, err
	}

	metrics.JobRequestsTotal.WithLabelValues("list", "ok").Inc()
	if b.cache != nil {
		b.cache.Set(ctx, filter, b.pageSize, resp)
	}
	return resp, nil
}

// Detail fetches a single role by slug. domain.ErrJobNotFound passes through
// for unknown slugs; any other failure is returned as-is.
func (b *JobBoard) Detail(ctx context.Context, slug string) (*domain.PublicJobDetail, error) {
	detail, err := b.client.Detail(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			metrics.JobRequestsTotal.WithLabelValues("detail", "not_found").Inc()
		} else {
			metrics.JobRequestsTotal.WithLabelValues("detail", "error").Inc()
		}
		return nil, err
	}

	metrics.JobRequestsTotal.WithLabelValues("detail", "ok").Inc()
	return detail, nil
}
