package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jdbryant/mospath/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"quiz_results", "profiles", "llm_usage"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestResultSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &QuizResult{
			ID:             string(rune('a' + i)),
			TakenAt:        base.Add(time.Duration(i) * time.Minute),
			EarnedPoints:   10 + i,
			PossiblePoints: 20,
			Correct:        5 + i,
			Answered:       10,
			Estimate:       100 + i,
			Band:           "Above Average",
			Duration:       90 * time.Second,
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err = repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].ID != "c" {
		t.Errorf("newest first: got %q, want c", got[0].ID)
	}
	if got[0].Duration != 90*time.Second {
		t.Errorf("duration = %v, want 90s", got[0].Duration)
	}
}

func TestResultBest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	best, err := repo.Best(ctx)
	if err != nil {
		t.Fatalf("best (empty): %v", err)
	}
	if best != nil {
		t.Fatal("expected nil best when no results exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i, est := range []int{95, 120, 110} {
		err := repo.Save(ctx, &QuizResult{
			ID:       string(rune('a' + i)),
			TakenAt:  base.Add(time.Duration(i) * time.Minute),
			Estimate: est,
			Band:     "Excellent",
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	best, err = repo.Best(ctx)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best == nil || best.Estimate != 120 {
		t.Fatalf("best = %+v, want estimate 120", best)
	}
}

func TestProfileSaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	got, err := repo.Load(ctx, "john")
	if err != nil {
		t.Fatalf("load (absent): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for absent profile")
	}

	p := &profile.CandidateProfile{
		Skills:               []string{"logistics", "scheduling"},
		TotalYearsExperience: 5,
		EducationRecords:     []string{"Bachelor's degree"},
		Preferences:          &profile.Preferences{WorkMode: "hybrid"},
	}
	if err := repo.Save(ctx, "john", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Load(ctx, "john")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored profile")
	}
	if got.TotalYearsExperience != 5 {
		t.Errorf("experience = %v, want 5", got.TotalYearsExperience)
	}
	if got.Preferences == nil || got.Preferences.WorkMode != "hybrid" {
		t.Errorf("preferences = %+v, want hybrid work mode", got.Preferences)
	}
}

func TestProfileSaveReplacesAndLists(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	first := &profile.CandidateProfile{Skills: []string{"welding"}}
	if err := repo.Save(ctx, "john", first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := &profile.CandidateProfile{Skills: []string{"welding", "rigging"}}
	if err := repo.Save(ctx, "john", second); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := repo.Load(ctx, "john")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Skills) != 2 {
		t.Errorf("skills = %v, want replacement with 2 entries", got.Skills)
	}

	names, err := repo.Names(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 1 || names[0] != "john" {
		t.Errorf("names = %v, want [john]", names)
	}
}

func TestUsageRecordAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.UsageRepo()
	ctx := context.Background()

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals (empty): %v", err)
	}
	if totals.Requests != 0 || totals.InputTokens != 0 {
		t.Fatalf("expected empty totals, got %+v", totals)
	}

	for i := 0; i < 2; i++ {
		err := repo.Record(ctx, &LLMUsage{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			InputTokens:  1000 + i,
			OutputTokens: 200,
			Duration:     3 * time.Second,
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	totals, err = repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Requests != 2 {
		t.Errorf("requests = %d, want 2", totals.Requests)
	}
	if totals.InputTokens != 2001 {
		t.Errorf("input tokens = %d, want 2001", totals.InputTokens)
	}
	if totals.OutputTokens != 400 {
		t.Errorf("output tokens = %d, want 400", totals.OutputTokens)
	}
}

func TestProfileSaveRejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	bad := &profile.CandidateProfile{TotalYearsExperience: -1}
	if err := repo.Save(context.Background(), "bad", bad); err == nil {
		t.Fatal("expected validation error")
	}
}
