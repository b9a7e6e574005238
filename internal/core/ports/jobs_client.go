package ports

import (
	"context"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// JobsClient reads the public job board from the backend.
type JobsClient interface {
	List(ctx context.Context, filter domain.JobFilter, pageSize int) (*domain.JobsResponse, error)
	// Detail returns domain.ErrJobNotFound when the slug is unknown.
	Detail(ctx context.Context, slug string) (*domain.PublicJobDetail, error)
}

// JobsService is the listing layer the handlers consume; implementations may
// cache listing pages.
type JobsService interface {
	List(ctx context.Context, filter domain.JobFilter) (*domain.JobsResponse, error)
	Detail(ctx context.Context, slug string) (*domain.PublicJobDetail, error)
}
