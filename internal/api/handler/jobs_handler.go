package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/core/domain"
	"github.com/synergyvets/careers-site/internal/core/ports"
)

// JobsHandler renders the public job board.
type JobsHandler struct {
	board ports.JobsService
	log   zerolog.Logger
}

func NewJobsHandler(board ports.JobsService, log zerolog.Logger) *JobsHandler {
	return &JobsHandler{board: board, log: log}
}

type jobsPage struct {
	basePage
	Filter        domain.JobFilter
	Jobs          []jobCardView
	Total         int
	Summary       string
	PageInfo      string
	PrevURL       string
	NextURL       string
	PrevDisabled  bool
	NextDisabled  bool
	Countries     []string
	ContractTypes []string
}

// List renders one page of the board. A backend failure degrades to the
// empty state with a logged error; the page never hard-fails.
func (h *JobsHandler) List(c echo.Context) error {
	filter := domain.NormalizeFilter(c.QueryParams())

	resp, err := h.board.List(c.Request().Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load jobs")
		resp = nil
	}

	return c.Render(http.StatusOK, "jobs.html", h.buildListPage(c, filter, resp))
}

func (h *JobsHandler) buildListPage(c echo.Context, filter domain.JobFilter, resp *domain.JobsResponse) jobsPage {
	page := jobsPage{
		basePage:     newBasePage(c, "Job board — Synergy Vets"),
		Filter:       filter,
		PrevDisabled: filter.Page <= 1,
	}

	if resp == nil || resp.Total == 0 {
		// Empty state: no summary line, Next never enabled.
		page.NextDisabled = true
		return page
	}

	current := resp.Page
	if current <= 0 {
		current = filter.Page
	}
	totalPages := resp.TotalPages()

	page.Jobs = make([]jobCardView, 0, len(resp.Jobs))
	for _, job := range resp.Jobs {
		page.Jobs = append(page.Jobs, toJobCard(job))
	}

	from := (current-1)*resp.PageSize + 1
	to := current * resp.PageSize
	if to > resp.Total {
		to = resp.Total
	}
	page.Total = resp.Total
	page.Summary = fmt.Sprintf("Showing %d-%d of %s roles", from, to, groupDigits(int64(resp.Total)))
	page.PageInfo = fmt.Sprintf("Page %d of %d", current, totalPages)

	prev := current - 1
	if prev < 1 {
		prev = 1
	}
	page.PrevURL = "/jobs" + filter.LinkQuery(domain.WithPage(prev))
	page.NextURL = "/jobs" + filter.LinkQuery(domain.WithPage(current+1))
	page.NextDisabled = !resp.HasMore && current >= totalPages

	page.Countries, page.ContractTypes = filterOptions(resp.Jobs)
	return page
}

// filterOptions collects the distinct countries and contract types present
// on the current page, for the filter dropdowns.
func filterOptions(jobs []domain.PublicJob) (countries, contractTypes []string) {
	seenCountry := make(map[string]struct{})
	seenContract := make(map[string]struct{})

	for _, job := range jobs {
		if c := job.Location.Country; c != "" {
			if _, ok := seenCountry[c]; !ok {
				seenCountry[c] = struct{}{}
				countries = append(countries, c)
			}
		}
		if ct := job.ContractType; ct != "" {
			if _, ok := seenContract[ct]; !ok {
				seenContract[ct] = struct{}{}
				contractTypes = append(contractTypes, ct)
			}
		}
	}

	sort.Strings(countries)
	sort.Strings(contractTypes)
	return countries, contractTypes
}

type jobDetailPage struct {
	basePage
	Job jobDetailView
}

// Detail renders a single role. Unknown slugs and backend failures propagate
// to the central error handler, which picks the not-found or error page.
func (h *JobsHandler) Detail(c echo.Context) error {
	detail, err := h.board.Detail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "job_detail.html", jobDetailPage{
		basePage: newBasePage(c, detail.Title+" — Synergy Vets"),
		Job:      toJobDetail(detail),
	})
}
