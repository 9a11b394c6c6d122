package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/match"
	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/router"
	"github.com/jdbryant/mospath/internal/screen"
	"github.com/jdbryant/mospath/internal/screens/home"
	quizscreen "github.com/jdbryant/mospath/internal/screens/quiz"
	"github.com/jdbryant/mospath/internal/screens/welcome"
	"github.com/jdbryant/mospath/internal/store"
	"github.com/jdbryant/mospath/internal/ui/layout"
)

// Options carries everything the TUI needs. Store may be nil, in which
// case results and profiles are not persisted.
type Options struct {
	Bank       *questionbank.Bank
	QuizConfig engine.Config
	Store      *store.Store
	Source     jobsearch.Source
	Matcher    *match.Matcher
	Logger     *zap.Logger

	// StartAtQuiz opens straight into a quiz attempt instead of the menu.
	StartAtQuiz bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	store   *store.Store
	initCmd tea.Cmd
	width   int
	height  int

	bestEstimate int
	quizCount    int
}

// newAppModel creates a new AppModel. First runs open with the welcome
// splash; returning users land on the home menu directly.
func newAppModel(opts Options) AppModel {
	m := AppModel{store: opts.Store}
	m.refreshStats()

	homeFactory := func() screen.Screen {
		return home.New(opts.Bank, opts.QuizConfig, opts.Store, opts.Source, opts.Matcher, opts.Logger)
	}

	switch {
	case opts.StartAtQuiz:
		var results store.ResultRepo
		var profiles store.ProfileRepo
		if opts.Store != nil {
			results = opts.Store.ResultRepo()
			profiles = opts.Store.ProfileRepo()
		}
		m.router = router.New(homeFactory())
		m.initCmd = m.router.Push(quizscreen.New(opts.Bank, opts.QuizConfig, results, profiles, opts.Logger))
	case m.quizCount == 0:
		splash := welcome.New(homeFactory)
		m.router = router.New(splash)
		m.initCmd = splash.Init()
	default:
		m.router = router.New(homeFactory())
	}
	return m
}

// refreshStats reloads the header stats. Called at startup and whenever
// a quiz screen is popped, so a just-finished attempt shows up.
func (m *AppModel) refreshStats() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	repo := m.store.ResultRepo()
	if best, err := repo.Best(ctx); err == nil && best != nil {
		m.bestEstimate = best.Estimate
	}
	if recent, err := repo.Recent(ctx, 1000); err == nil {
		m.quizCount = len(recent)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		m.refreshStats()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.bestEstimate, m.quizCount, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
