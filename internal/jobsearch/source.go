package jobsearch

import (
	"context"
	"strings"
)

// Params filters a position search.
type Params struct {
	// Text matches against title and employer, case-insensitive.
	Text string `mapstructure:"text"`

	// MOS filters to positions cross-walked from a military occupational
	// specialty code.
	MOS string `mapstructure:"mos"`

	// Location filters by substring containment, case-insensitive.
	Location string `mapstructure:"location"`

	// Limit caps the result count. Zero means no cap.
	Limit int `mapstructure:"limit"`
}

// Source supplies job positions. The live HTTP client and the static
// catalog both implement it; the matcher does not care which one fed it.
type Source interface {
	Search(ctx context.Context, params Params) ([]Position, error)
}

// matchesParams applies the in-memory filter shared by the static catalog
// and client-side result trimming.
func matchesParams(p Position, params Params) bool {
	if params.Text != "" {
		text := strings.ToLower(params.Text)
		title := strings.ToLower(p.Title)
		employer := strings.ToLower(p.Employer)
		if !strings.Contains(title, text) && !strings.Contains(employer, text) {
			return false
		}
	}
	if params.MOS != "" {
		found := false
		for _, code := range p.MOSCodes {
			if strings.EqualFold(code, params.MOS) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if params.Location != "" {
		if !strings.Contains(strings.ToLower(p.Location), strings.ToLower(params.Location)) {
			return false
		}
	}
	return true
}
