package summary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jdbryant/mospath/internal/aptitude"
	"github.com/jdbryant/mospath/internal/profile"
	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/router"
	"github.com/jdbryant/mospath/internal/screen"
	"github.com/jdbryant/mospath/internal/store"
	"github.com/jdbryant/mospath/internal/ui/components"
	"github.com/jdbryant/mospath/internal/ui/layout"
	"github.com/jdbryant/mospath/internal/ui/theme"
)

// Data is everything the summary displays, computed at quiz end.
type Data struct {
	Result         engine.Result
	Estimate       int
	Band           aptitude.Band
	CategoryScores map[questionbank.Category]float64
	Correct        int
}

// savedMsg reports the outcome of merging scores into the stored profile.
type savedMsg struct {
	Err error
}

// SummaryScreen shows the finished quiz: estimate, band, category
// breakdown, and derived composite scores.
type SummaryScreen struct {
	data     Data
	profiles store.ProfileRepo

	saved   bool
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. A nil profile repo hides the save option.
func New(data Data, profiles store.ProfileRepo) *SummaryScreen {
	return &SummaryScreen{data: data, profiles: profiles}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
	}
	if s.profiles != nil && !s.saved {
		hints = append([]layout.KeyHint{{Key: "S", Description: "Save scores to profile"}}, hints...)
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saved = msg.Err == nil
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			if s.profiles != nil && !s.saved {
				return s, s.saveToProfile()
			}
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// saveToProfile merges this attempt's category scores into the default
// stored profile as a new assessment result. Later results win per
// category when the matcher merges them.
func (s *SummaryScreen) saveToProfile() tea.Cmd {
	scores := s.data.CategoryScores
	repo := s.profiles
	return func() tea.Msg {
		ctx := context.Background()

		p, err := repo.Load(ctx, store.DefaultProfileName)
		if err != nil {
			return savedMsg{Err: err}
		}
		if p == nil {
			p = &profile.CandidateProfile{}
		}

		p.AssessmentResults = append(p.AssessmentResults, profile.AssessmentResult{
			CategoryScores: scores,
		})

		return savedMsg{Err: repo.Save(ctx, store.DefaultProfileName, p)}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	center(theme.Title.Render("QUIZ COMPLETE"))
	b.WriteString("\n")

	center(theme.Body.Render("Estimated GT score: ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d", s.data.Estimate)))
	center(theme.Band(s.data.Band.Label).Render(s.data.Band.Label) +
		theme.Hint.Render(fmt.Sprintf("  (percentile band %d-%d)", s.data.Band.Min, s.data.Band.Max)))
	b.WriteString("\n")

	answered := len(s.data.Result.AnswerLog)
	center(theme.Body.Render(fmt.Sprintf("%d of %d correct · %d/%d points · %s",
		s.data.Correct, answered,
		s.data.Result.EarnedPoints, s.data.Result.PossiblePoints,
		s.data.Result.Duration.Round(1e9))))
	b.WriteString("\n")

	// Category breakdown in the bank's canonical order.
	barWidth := 40
	if width < 60 {
		barWidth = width - 20
	}
	for _, cat := range questionbank.AllCategories() {
		score, ok := s.data.CategoryScores[cat]
		if !ok {
			continue
		}
		bar := components.NewProgressBar(fmt.Sprintf("%-4s", string(cat)), score/100, true, barWidth)
		center(bar.View())
	}
	b.WriteString("\n")

	// Composite line scores derived from the categories, in a fixed order.
	composites := aptitude.Composites()
	names := make([]string, 0, len(composites))
	for name := range composites {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		score := aptitude.CompositeScore(s.data.CategoryScores, composites[name])
		parts = append(parts, fmt.Sprintf("%s %.0f", name, score))
	}
	center(theme.Subtitle.Render("Composites: " + strings.Join(parts, "  ")))
	b.WriteString("\n")

	if s.saved {
		center(theme.Correct.Render("Scores saved to your profile."))
	} else if s.saveErr != nil {
		center(theme.Incorrect.Render("Save failed: " + s.saveErr.Error()))
	} else if s.profiles != nil {
		center(theme.Hint.Render("Press S to save these scores to your profile for job matching."))
	}

	return b.String()
}
