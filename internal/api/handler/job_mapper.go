package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

const excerptLength = 160

type jobCardView struct {
	Title        string
	Slug         string
	Location     string
	ContractType string
	WorkPattern  string
	PostedAt     string
	Compensation string
	Excerpt      string
}

func toJobCard(job domain.PublicJob) jobCardView {
	return jobCardView{
		Title:        job.Title,
		Slug:         job.Slug,
		Location:     formatLocation(job.Location),
		ContractType: job.ContractType,
		WorkPattern:  job.WorkPattern,
		PostedAt:     formatDate(job.PostedAt),
		Compensation: formatCompensation(job.SalaryMin, job.SalaryMax, job.Currency),
		Excerpt:      excerpt(job),
	}
}

type jobDetailView struct {
	jobCardView
	Summary    string
	Paragraphs []string
	ClosingOn  string
	UpdatedAt  string
	Source     string
}

func toJobDetail(job *domain.PublicJobDetail) jobDetailView {
	return jobDetailView{
		jobCardView: toJobCard(job.PublicJob),
		Summary:     job.Summary,
		Paragraphs:  descriptionSegments(job.Description),
		ClosingOn:   formatDate(job.ExpiresAt),
		UpdatedAt:   formatDate(job.UpdatedAt),
		Source:      job.Source,
	}
}

// formatLocation joins city, region and country, skipping blanks.
func formatLocation(loc domain.JobLocation) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{loc.City, loc.Region, loc.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// formatCompensation renders the salary band, or "" when no bound has both an
// amount and a currency.
func formatCompensation(min, max int64, currency string) string {
	if currency == "" {
		return ""
	}
	switch {
	case min > 0 && max > 0:
		return currency + " " + groupDigits(min) + " - " + groupDigits(max)
	case min > 0:
		return currency + " " + groupDigits(min) + "+"
	case max > 0:
		return currency + " up to " + groupDigits(max)
	}
	return ""
}

// groupDigits inserts thousands separators, so 45000 becomes "45,000".
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// formatDate renders an RFC3339 timestamp as "02 Jan 2006", or "" when the
// value is missing or unparsable.
func formatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return t.Format("02 Jan 2006")
}

func excerpt(job domain.PublicJob) string {
	if job.Summary != "" {
		return job.Summary
	}
	runes := []rune(job.Description)
	if len(runes) <= excerptLength {
		return job.Description
	}
	return string(runes[:excerptLength]) + "…"
}

// descriptionSegments splits a description into paragraphs on blank lines,
// falling back to single newlines when the text has no blank-line breaks.
func descriptionSegments(description string) []string {
	paragraphs := splitTrimmed(description, "\n\n")
	if len(paragraphs) > 1 {
		return paragraphs
	}
	return splitTrimmed(description, "\n")
}

func splitTrimmed(s, sep string) []string {
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), sep)
	out := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
