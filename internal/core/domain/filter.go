package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// JobFilter is the canonical form of the job-board search parameters.
// It is derived deterministically from URL query parameters and has no
// lifecycle beyond a single request.
type JobFilter struct {
	Page         int
	Q            string
	Country      string
	ContractType string
}

// NormalizeFilter converts raw query parameters into a JobFilter. Repeated
// parameters honour the first value only. Page falls back to 1 on any parse
// failure or non-positive result; text fields are trimmed, absent becomes "".
func NormalizeFilter(raw url.Values) JobFilter {
	page := 1
	if n, err := strconv.Atoi(first(raw, "page")); err == nil && n > 0 {
		page = n
	}

	return JobFilter{
		Page:         page,
		Q:            strings.TrimSpace(first(raw, "q")),
		Country:      strings.TrimSpace(first(raw, "country")),
		ContractType: strings.TrimSpace(first(raw, "contract_type")),
	}
}

func first(raw url.Values, key string) string {
	vs, ok := raw[key]
	if !ok || len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// APIQuery builds the outbound backend query. Page and page_size are always
// present; the text filters only when non-empty.
func (f JobFilter) APIQuery(pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(f.Page))
	params.Set("page_size", strconv.Itoa(pageSize))

	if f.Q != "" {
		params.Set("q", f.Q)
	}
	if f.Country != "" {
		params.Set("country", f.Country)
	}
	if f.ContractType != "" {
		params.Set("contract_type", f.ContractType)
	}
	return params
}

// FilterOverride replaces selected fields when deriving a link from the
// current filter. Nil fields keep the current value.
type FilterOverride struct {
	Page *int
}

// WithPage returns an override that moves to the given page.
func WithPage(page int) FilterOverride {
	return FilterOverride{Page: &page}
}

// LinkQuery renders the filter as a site-relative query string ("?..." or
// ""). Page 1 is canonical and carries no page parameter; empty text fields
// are omitted.
func (f JobFilter) LinkQuery(override FilterOverride) string {
	next := f
	if override.Page != nil {
		next.Page = *override.Page
	}

	params := url.Values{}
	if next.Q != "" {
		params.Set("q", next.Q)
	}
	if next.Country != "" {
		params.Set("country", next.Country)
	}
	if next.ContractType != "" {
		params.Set("contract_type", next.ContractType)
	}
	if next.Page > 1 {
		params.Set("page", strconv.Itoa(next.Page))
	}

	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}
