package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/match"
	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/router"
	"github.com/jdbryant/mospath/internal/screen"
	"github.com/jdbryant/mospath/internal/screens/history"
	"github.com/jdbryant/mospath/internal/screens/matches"
	"github.com/jdbryant/mospath/internal/screens/profileform"
	quizscreen "github.com/jdbryant/mospath/internal/screens/quiz"
	"github.com/jdbryant/mospath/internal/store"
	"github.com/jdbryant/mospath/internal/ui/components"
	"github.com/jdbryant/mospath/internal/ui/theme"
)

// HomeScreen is the main menu. It loads summary stats once at creation;
// screens pushed from here re-read the store themselves.
type HomeScreen struct {
	menu components.Menu

	bestEstimate int
	quizCount    int
	skillCount   int
	hasProfile   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(bank *questionbank.Bank, quizCfg engine.Config, st *store.Store, source jobsearch.Source, matcher *match.Matcher, logger *zap.Logger) *HomeScreen {
	h := &HomeScreen{}

	var results store.ResultRepo
	var profiles store.ProfileRepo
	if st != nil {
		results = st.ResultRepo()
		profiles = st.ProfileRepo()

		ctx := context.Background()
		if best, err := results.Best(ctx); err == nil && best != nil {
			h.bestEstimate = best.Estimate
		}
		if recent, err := results.Recent(ctx, 1000); err == nil {
			h.quizCount = len(recent)
		}
		if p, err := profiles.Load(ctx, store.DefaultProfileName); err == nil && p != nil {
			h.hasProfile = true
			h.skillCount = len(p.Skills)
		}
	}

	items := []components.MenuItem{
		{Label: "TAKE PRACTICE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(bank, quizCfg, results, profiles, logger),
				}
			}
		}},
		{Label: "MY PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profileform.New(profiles)}
			}
		}},
		{Label: "FIND MATCHING JOBS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: matches.New(profiles, source, matcher, logger)}
			}
		}},
		{Label: "QUIZ HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(results)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("MOSPATH")
	tagline := theme.Hint.Render("From your MOS to your next mission.")
	sections = append(sections, title+"\n"+tagline)

	sections = append(sections, h.renderStats())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	gt := "--"
	if h.bestEstimate > 0 {
		gt = fmt.Sprintf("%d", h.bestEstimate)
	}
	profileStr := "not set up"
	if h.hasProfile {
		profileStr = fmt.Sprintf("%d skills", h.skillCount)
	}

	stats := fmt.Sprintf("Best GT %s  ·  %d quizzes  ·  Profile: %s",
		gt, h.quizCount, profileStr)

	return theme.Card.Render(theme.Body.Render(stats))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
