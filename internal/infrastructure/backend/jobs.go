package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// List fetches one page of the public job board.
func (c *Client) List(ctx context.Context, filter domain.JobFilter, pageSize int) (*domain.JobsResponse, error) {
	var out domain.JobsResponse
	if err := c.getJSON(ctx, "/public/jobs", filter.APIQuery(pageSize), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Detail fetches a single published role. Unknown slugs map to
// domain.ErrJobNotFound; any other non-2xx surfaces as an APIError carrying
// the status code.
func (c *Client) Detail(ctx context.Context, slug string) (*domain.PublicJobDetail, error) {
	var out domain.PublicJobDetail
	err := c.getJSON(ctx, "/public/jobs/"+url.PathEscape(slug), nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &out, nil
}
