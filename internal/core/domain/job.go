package domain

import "errors"

var ErrJobNotFound = errors.New("job not found")

// JobLocation is the optional geographic breakdown attached to a job.
type JobLocation struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
}

// PublicJob is a read-only projection of a published role as the backend
// serves it on the listing endpoint. The site only displays these records.
type PublicJob struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Slug         string      `json:"slug"`
	Summary      string      `json:"summary,omitempty"`
	Description  string      `json:"description"`
	ContractType string      `json:"contract_type,omitempty"`
	WorkPattern  string      `json:"work_pattern,omitempty"`
	SalaryMin    int64       `json:"salary_min,omitempty"`
	SalaryMax    int64       `json:"salary_max,omitempty"`
	Currency     string      `json:"currency,omitempty"`
	PostedAt     string      `json:"posted_at,omitempty"`
	ExpiresAt    string      `json:"expires_at,omitempty"`
	Location     JobLocation `json:"location"`
}

// JobsResponse is one page of the public job listing.
type JobsResponse struct {
	Jobs     []PublicJob `json:"jobs"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int         `json:"total"`
	HasMore  bool        `json:"has_more"`
}

// TotalPages derives the page count from Total and PageSize, never below 1.
func (r JobsResponse) TotalPages() int {
	if r.PageSize <= 0 {
		return 1
	}
	pages := (r.Total + r.PageSize - 1) / r.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PublicJobDetail extends PublicJob with the detail-only fields.
type PublicJobDetail struct {
	PublicJob
	Source    string `json:"source,omitempty"`
	SourceRef string `json:"source_ref,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
