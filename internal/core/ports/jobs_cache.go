package ports

import (
	"context"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// JobsCache is a short-lived cache of listing pages. Implementations must
// treat backend unavailability as a miss; a cache failure never surfaces.
type JobsCache interface {
	Get(ctx context.Context, filter domain.JobFilter, pageSize int) (*domain.JobsResponse, bool)
	Set(ctx context.Context, filter domain.JobFilter, pageSize int, resp *domain.JobsResponse)
}
