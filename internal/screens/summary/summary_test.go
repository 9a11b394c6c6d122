package summary

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jdbryant/mospath/internal/aptitude"
	"github.com/jdbryant/mospath/internal/profile"
	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/store"
)

// memProfileRepo is an in-memory store.ProfileRepo.
type memProfileRepo struct {
	profiles map[string]*profile.CandidateProfile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*profile.CandidateProfile)}
}

func (m *memProfileRepo) Save(_ context.Context, name string, p *profile.CandidateProfile) error {
	cp := *p
	m.profiles[name] = &cp
	return nil
}

func (m *memProfileRepo) Load(_ context.Context, name string) (*profile.CandidateProfile, error) {
	return m.profiles[name], nil
}

func (m *memProfileRepo) Names(_ context.Context) ([]string, error) {
	var out []string
	for name := range m.profiles {
		out = append(out, name)
	}
	return out, nil
}

func testData() Data {
	return Data{
		Result: engine.Result{
			EarnedPoints:   12,
			PossiblePoints: 20,
			AnswerLog: []engine.AnswerRecord{
				{QuestionID: "ar-e1", Correct: true},
				{QuestionID: "wk-e1", Correct: false},
			},
			Duration: 90 * time.Second,
		},
		Estimate: 110,
		Band:     aptitude.BandFor(12, 20),
		CategoryScores: map[questionbank.Category]float64{
			questionbank.CategoryArithmeticReasoning: 80,
			questionbank.CategoryWordKnowledge:       50,
		},
		Correct: 1,
	}
}

func TestViewShowsEstimateAndBand(t *testing.T) {
	s := New(testData(), nil)
	view := s.View(80, 24)

	if !strings.Contains(view, "110") {
		t.Error("view should show the estimate")
	}
	if !strings.Contains(view, "Composites:") {
		t.Error("view should show composite scores")
	}
}

func TestSaveMergesScoresIntoProfile(t *testing.T) {
	repo := newMemProfileRepo()
	repo.profiles[store.DefaultProfileName] = &profile.CandidateProfile{
		Skills:               []string{"logistics"},
		TotalYearsExperience: 4,
		AssessmentResults: []profile.AssessmentResult{
			{CategoryScores: map[questionbank.Category]float64{
				questionbank.CategoryWordKnowledge: 30,
			}},
		},
	}

	s := New(testData(), repo)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg, got %T", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}

	p := repo.profiles[store.DefaultProfileName]
	if len(p.AssessmentResults) != 2 {
		t.Fatalf("assessment results = %d, want 2", len(p.AssessmentResults))
	}
	if got := p.Skills; len(got) != 1 || got[0] != "logistics" {
		t.Errorf("existing profile fields should survive, got skills %v", got)
	}

	// Later results win per category in the merged view.
	merged := p.MergedCategoryScores()
	if merged[questionbank.CategoryWordKnowledge] != 50 {
		t.Errorf("merged WK = %v, want 50 from the newer attempt", merged[questionbank.CategoryWordKnowledge])
	}
}

func TestSaveCreatesProfileWhenMissing(t *testing.T) {
	repo := newMemProfileRepo()

	s := New(testData(), repo)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if msg := cmd(); msg.(savedMsg).Err != nil {
		t.Fatalf("save failed: %v", msg.(savedMsg).Err)
	}

	p := repo.profiles[store.DefaultProfileName]
	if p == nil || len(p.AssessmentResults) != 1 {
		t.Fatal("expected a fresh profile holding the assessment result")
	}
}

func TestSavedStateStopsFurtherSaves(t *testing.T) {
	repo := newMemProfileRepo()
	s := New(testData(), repo)

	s.Update(savedMsg{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd != nil {
		t.Error("second save should be a no-op")
	}
}
