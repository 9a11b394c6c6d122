package matches

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/match"
	"github.com/jdbryant/mospath/internal/router"
	"github.com/jdbryant/mospath/internal/screen"
	"github.com/jdbryant/mospath/internal/store"
	"github.com/jdbryant/mospath/internal/ui/components"
	"github.com/jdbryant/mospath/internal/ui/layout"
	"github.com/jdbryant/mospath/internal/ui/theme"
)

const searchTimeout = 15 * time.Second

type matchesLoadedMsg struct {
	Scores    []match.Score
	NoProfile bool
	Err       error
}

// MatchesScreen ranks open positions against the stored profile.
type MatchesScreen struct {
	profiles store.ProfileRepo
	source   jobsearch.Source
	matcher  *match.Matcher
	logger   *zap.Logger

	scores    []match.Score
	selected  int
	expanded  map[int]bool
	loaded    bool
	noProfile bool
	errMsg    string
}

var _ screen.Screen = (*MatchesScreen)(nil)
var _ screen.KeyHintProvider = (*MatchesScreen)(nil)

// New creates the match results screen.
func New(profiles store.ProfileRepo, source jobsearch.Source, matcher *match.Matcher, logger *zap.Logger) *MatchesScreen {
	return &MatchesScreen{
		profiles: profiles,
		source:   source,
		matcher:  matcher,
		logger:   logger,
		expanded: make(map[int]bool),
	}
}

func (s *MatchesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		p, err := s.profiles.Load(ctx, store.DefaultProfileName)
		if err != nil {
			return matchesLoadedMsg{Err: err}
		}
		if p == nil {
			return matchesLoadedMsg{NoProfile: true}
		}

		positions, err := s.source.Search(ctx, jobsearch.Params{})
		if err != nil {
			return matchesLoadedMsg{Err: err}
		}
		if s.logger != nil {
			s.logger.Debug("ranking positions",
				zap.Int("positions", len(positions)),
				zap.Int("skills", len(p.Skills)))
		}

		return matchesLoadedMsg{Scores: s.matcher.MatchMany(p, positions)}
	}
}

func (s *MatchesScreen) Title() string {
	return "Job Matches"
}

func (s *MatchesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MatchesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case matchesLoadedMsg:
		s.loaded = true
		s.noProfile = msg.NoProfile
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.scores = msg.Scores
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.scores)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *MatchesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Searching positions...")
	}
	if s.noProfile {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No profile yet. Set one up under My Profile first.")
	}
	if len(s.scores) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No open positions found.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sc := range s.scores {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		title := sc.Position.Title
		if sc.Position.Employer != "" {
			title += " · " + sc.Position.Employer
		}
		line := fmt.Sprintf("%s%3.0f  %s  %s", prefix, sc.Overall, title,
			theme.Band(sc.Band).Render(sc.Band))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line) + "\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetail(sc, width))
		}
	}

	return b.String()
}

func (s *MatchesScreen) renderDetail(sc match.Score, width int) string {
	var b strings.Builder

	barWidth := 34
	if width < 70 {
		barWidth = width - 30
	}
	rows := []struct {
		label string
		value float64
	}{
		{"Skills", sc.Breakdown.Skills},
		{"Experience", sc.Breakdown.Experience},
		{"Education", sc.Breakdown.Education},
		{"Assessment", sc.Breakdown.Assessment},
		{"Preference", sc.Breakdown.Preference},
	}
	for _, row := range rows {
		bar := components.NewProgressBar(fmt.Sprintf("%-10s", row.label), row.value/100, true, barWidth)
		b.WriteString("      " + bar.View() + "\n")
	}

	if len(sc.MissingSkills) > 0 {
		b.WriteString("      " + theme.Hint.Render("Missing: "+strings.Join(sc.MissingSkills, ", ")) + "\n")
	}
	for _, insight := range sc.Insights {
		b.WriteString("      " + theme.Body.Render("• "+insight) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
