package profileform

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jdbryant/mospath/internal/profile"
	"github.com/jdbryant/mospath/internal/router"
	"github.com/jdbryant/mospath/internal/screen"
	"github.com/jdbryant/mospath/internal/store"
	"github.com/jdbryant/mospath/internal/ui/components"
	"github.com/jdbryant/mospath/internal/ui/layout"
	"github.com/jdbryant/mospath/internal/ui/theme"
)

const (
	fieldSkills = iota
	fieldYears
	fieldEducation
	fieldWorkMode
	fieldLocation
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Skills (comma-separated)",
	"Years of experience",
	"Education (comma-separated)",
	"Work mode (remote / onsite / hybrid, blank for any)",
	"Preferred location (blank for any)",
}

type profileLoadedMsg struct {
	Profile *profile.CandidateProfile
	Err     error
}

type profileSavedMsg struct {
	Err error
}

// FormScreen edits the default candidate profile by hand. Quiz scores
// attached to the profile are preserved across edits.
type FormScreen struct {
	profiles store.ProfileRepo

	inputs  [fieldCount]components.TextInput
	focused int

	// existing carries assessment results forward through a save.
	existing *profile.CandidateProfile

	loaded  bool
	saved   bool
	errMsg  string
	saveErr string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the profile form.
func New(profiles store.ProfileRepo) *FormScreen {
	s := &FormScreen{profiles: profiles}
	s.inputs[fieldSkills] = components.NewTextInput("networking, logistics, leadership", false, 200)
	s.inputs[fieldYears] = components.NewTextInput("4", true, 5)
	s.inputs[fieldEducation] = components.NewTextInput("High school diploma, Associate degree", false, 200)
	s.inputs[fieldWorkMode] = components.NewTextInput("remote", false, 10)
	s.inputs[fieldLocation] = components.NewTextInput("San Antonio, TX", false, 80)
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	if s.profiles == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		p, err := s.profiles.Load(context.Background(), store.DefaultProfileName)
		return profileLoadedMsg{Profile: p, Err: err}
	}
}

func (s *FormScreen) Title() string {
	return "My Profile"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Profile != nil {
			s.existing = msg.Profile
			s.prefill(msg.Profile)
		}
		return s, nil

	case profileSavedMsg:
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
		} else {
			s.saved = true
			s.saveErr = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "down":
		s.focused = (s.focused + 1) % fieldCount
		return s, nil
	case "shift+tab", "up":
		s.focused = (s.focused + fieldCount - 1) % fieldCount
		return s, nil
	case "enter":
		if s.focused < fieldCount-1 {
			s.focused++
			return s, nil
		}
		return s, s.save()
	}

	s.saved = false
	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *FormScreen) prefill(p *profile.CandidateProfile) {
	s.inputs[fieldSkills].SetValue(strings.Join(p.Skills, ", "))
	if p.TotalYearsExperience > 0 {
		s.inputs[fieldYears].SetValue(strings.TrimRight(strings.TrimRight(
			fmt.Sprintf("%.1f", p.TotalYearsExperience), "0"), "."))
	}
	s.inputs[fieldEducation].SetValue(strings.Join(p.EducationRecords, ", "))
	if p.Preferences != nil {
		s.inputs[fieldWorkMode].SetValue(p.Preferences.WorkMode)
		s.inputs[fieldLocation].SetValue(p.Preferences.Location)
	}
}

// buildProfile assembles a profile from the form, carrying forward any
// assessment results from the stored one.
func (s *FormScreen) buildProfile() (*profile.CandidateProfile, error) {
	p := &profile.CandidateProfile{
		Skills:           splitCSV(s.inputs[fieldSkills].Value()),
		EducationRecords: splitCSV(s.inputs[fieldEducation].Value()),
	}

	if v := strings.TrimSpace(s.inputs[fieldYears].Value()); v != "" {
		years, err := s.inputs[fieldYears].NumericValue()
		if err != nil {
			return nil, fmt.Errorf("years of experience must be a number")
		}
		p.TotalYearsExperience = years
	}

	mode := strings.ToLower(strings.TrimSpace(s.inputs[fieldWorkMode].Value()))
	switch mode {
	case "", "remote", "onsite", "hybrid":
	default:
		return nil, fmt.Errorf("work mode must be remote, onsite, or hybrid")
	}
	loc := strings.TrimSpace(s.inputs[fieldLocation].Value())
	if mode != "" || loc != "" {
		p.Preferences = &profile.Preferences{WorkMode: mode, Location: loc}
	}

	if s.existing != nil {
		p.AssessmentResults = s.existing.AssessmentResults
	}
	return p, nil
}

func (s *FormScreen) save() tea.Cmd {
	p, err := s.buildProfile()
	if err != nil {
		s.saveErr = err.Error()
		return nil
	}
	if s.profiles == nil {
		s.saveErr = "no profile store available"
		return nil
	}
	s.existing = p
	return func() tea.Msg {
		return profileSavedMsg{Err: s.profiles.Save(context.Background(), store.DefaultProfileName, p)}
	}
}

func (s *FormScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profile...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + theme.Subtitle.Render("Tell us about your background") + "\n")
	b.WriteString("  " + theme.Hint.Render("The matcher uses this to rank civilian positions for you.") + "\n\n")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		labelStyle := theme.Body
		marker := "  "
		if i == s.focused {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			marker = "▸ "
		}
		b.WriteString("  " + marker + labelStyle.Render(label) + "\n")
		b.WriteString("    " + s.inputs[i].View() + "\n\n")
	}

	switch {
	case s.saveErr != "":
		b.WriteString("  " + theme.Incorrect.Render(s.saveErr) + "\n")
	case s.saved:
		b.WriteString("  " + theme.Correct.Render("Profile saved.") + "\n")
	default:
		b.WriteString("  " + theme.Hint.Render("Enter on the last field saves the profile.") + "\n")
	}

	return b.String()
}

// splitCSV splits a comma-separated field, trimming blanks.
func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
