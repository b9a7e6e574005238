package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PagesHandler renders the static marketing pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

type marketingPage struct {
	basePage
	Heading string
	Lede    string
	Points  []string
}

func (h *PagesHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "marketing.html", marketingPage{
		basePage: newBasePage(c, "Synergy Vets — Veterinary Recruitment"),
		Heading:  "Veterinary careers without borders",
		Lede:     "Synergy Vets places veterinary surgeons, nurses and practice teams into partner hospitals worldwide.",
		Points: []string{
			"Live roles across the UK, Ireland, Australia and New Zealand",
			"Dedicated relocation and registration support",
			"Permanent and locum placements with transparent pay",
		},
	})
}

func (h *PagesHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "marketing.html", marketingPage{
		basePage: newBasePage(c, "About — Synergy Vets"),
		Heading:  "About Synergy Vets",
		Lede:     "A specialist veterinary staffing agency run by people who have worked the shifts themselves.",
		Points: []string{
			"Founded by veterinary professionals",
			"Partner hospitals vetted for clinical standards",
			"Long-term support after every placement",
		},
	})
}

func (h *PagesHandler) Employers(c echo.Context) error {
	return c.Render(http.StatusOK, "marketing.html", marketingPage{
		basePage: newBasePage(c, "Employers — Synergy Vets"),
		Heading:  "Hire with Synergy Vets",
		Lede:     "From single locum cover to building an entire hospital team, we source candidates who stay.",
		Points: []string{
			"Pre-screened clinical candidates",
			"Cover for rota gaps at short notice",
			"Salary benchmarking for your region",
		},
	})
}

func (h *PagesHandler) Candidates(c echo.Context) error {
	return c.Render(http.StatusOK, "marketing.html", marketingPage{
		basePage: newBasePage(c, "Candidates — Synergy Vets"),
		Heading:  "Find your next role",
		Lede:     "Tell us where you want to work and we will match you with hospitals that fit.",
		Points: []string{
			"Visa and registration guidance",
			"Interview preparation with clinical recruiters",
			"No fees for candidates, ever",
		},
	})
}

func (h *PagesHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "marketing.html", marketingPage{
		basePage: newBasePage(c, "Contact — Synergy Vets"),
		Heading:  "Talk to the team",
		Lede:     "Email hello@synergyvets.com or call +44 20 7946 0000 and a recruiter will get back within one working day.",
	})
}
