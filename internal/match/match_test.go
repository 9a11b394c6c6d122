package match

import (
	"reflect"
	"testing"

	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/profile"
	"github.com/jdbryant/mospath/internal/questionbank"
)

func float(v float64) *float64 { return &v }

func newMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultWeights())
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	return m
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights: %v", err)
	}

	bad := Weights{Skills: 0.5, Experience: 0.5, Education: 0.5}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for weights summing to 1.5")
	}
	if _, err := NewMatcher(bad); err == nil {
		t.Fatal("NewMatcher accepted invalid weights")
	}
}

func TestScoreSkills(t *testing.T) {
	res := ScoreSkills([]string{"python", "aws"}, []string{"Python", "Linux", "AWS"})
	if res.Score != 67 {
		t.Errorf("score = %v, want 67", res.Score)
	}
	if !reflect.DeepEqual(res.Missing, []string{"linux"}) {
		t.Errorf("missing = %v, want [linux]", res.Missing)
	}
	if !reflect.DeepEqual(res.Matched, []string{"python", "aws"}) {
		t.Errorf("matched = %v, want [python aws]", res.Matched)
	}
}

func TestScoreSkills_SubstringMatch(t *testing.T) {
	// "python scripting" should cover a bare "python" requirement, and a
	// candidate's "sql" should cover "postgresql" going the other way.
	res := ScoreSkills([]string{"python scripting", "sql"}, []string{"Python", "PostgreSQL"})
	if res.Score != 100 {
		t.Errorf("score = %v, want 100", res.Score)
	}
}

func TestScoreSkills_NoRequirements(t *testing.T) {
	res := ScoreSkills(nil, nil)
	if res.Score != 100 {
		t.Errorf("score = %v, want 100 with no requirements", res.Score)
	}
}

func TestScoreExperience(t *testing.T) {
	tests := []struct {
		name  string
		years float64
		min   *float64
		max   *float64
		want  float64
	}{
		{"no bounds", 0, nil, nil, 100},
		{"three years short", 2, float(5), nil, 40},
		{"far under floor", 0, float(10), nil, 0},
		{"within range", 4, float(2), float(8), 100},
		{"at minimum", 5, float(5), nil, 100},
		{"slightly over", 10, float(1), float(8), 90},
		{"far over floors at 70", 40, nil, float(5), 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreExperience(tt.years, tt.min, tt.max); got != tt.want {
				t.Errorf("ScoreExperience(%v) = %v, want %v", tt.years, got, tt.want)
			}
		})
	}
}

func TestScoreExperience_MonotonicTowardMinimum(t *testing.T) {
	min := float(6)
	prev := -1.0
	for years := 0.0; years <= 6; years++ {
		got := ScoreExperience(years, min, nil)
		if got < prev {
			t.Fatalf("score dropped from %v to %v at %v years", prev, got, years)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("score at the minimum = %v, want 100", prev)
	}
}

func TestScoreEducation(t *testing.T) {
	tests := []struct {
		name     string
		records  []string
		required []string
		want     float64
	}{
		{"no requirement", nil, nil, 100},
		{"meets exactly", []string{"Bachelor of Science, Biology"}, []string{"Bachelor's degree"}, 100},
		{"exceeds", []string{"Master of Public Administration"}, []string{"Bachelor's degree"}, 100},
		{"one level short", []string{"Associate of Arts"}, []string{"Bachelor's degree required"}, 70},
		{"two levels short", []string{"High school diploma"}, []string{"Bachelor's degree"}, 40},
		{"ged counts as high school", []string{"GED"}, []string{"High school diploma or GED"}, 100},
		{"unrecognized requirement", []string{}, []string{"certificate of completion"}, 100},
		{"doctorate required", []string{"Master's degree"}, []string{"PhD"}, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreEducation(tt.records, tt.required); got != tt.want {
				t.Errorf("ScoreEducation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreAssessment(t *testing.T) {
	withScores := &profile.CandidateProfile{
		AssessmentResults: []profile.AssessmentResult{{
			CategoryScores: map[questionbank.Category]float64{
				questionbank.CategoryArithmeticReasoning: 80,
				questionbank.CategoryWordKnowledge:       70,
				questionbank.CategoryParagraphComp:       60,
			},
		}},
	}

	if got := ScoreAssessment(withScores, nil); got != 100 {
		t.Errorf("no requirements = %v, want 100", got)
	}

	noData := &profile.CandidateProfile{}
	if got := ScoreAssessment(noData, map[string]float64{"GT": 100}); got != 50 {
		t.Errorf("no assessment data = %v, want neutral 50", got)
	}

	// GT = mean(AR, WK, PC) = 70; one of two requirements met.
	reqs := map[string]float64{"GT": 65, "EL": 90}
	if got := ScoreAssessment(withScores, reqs); got != 50 {
		t.Errorf("half met = %v, want 50", got)
	}

	if got := ScoreAssessment(withScores, map[string]float64{"GT": 65}); got != 100 {
		t.Errorf("all met = %v, want 100", got)
	}
}

func TestScorePreference(t *testing.T) {
	pos := jobsearch.Position{WorkMode: "onsite", Location: "Dallas, TX"}

	if got := ScorePreference(nil, pos); got != 100 {
		t.Errorf("nil preferences = %v, want 100", got)
	}
	if got := ScorePreference(&profile.Preferences{WorkMode: "onsite", Location: "dallas"}, pos); got != 100 {
		t.Errorf("full match = %v, want 100", got)
	}
	if got := ScorePreference(&profile.Preferences{WorkMode: "remote"}, pos); got != 70 {
		t.Errorf("hard work-mode mismatch = %v, want 70", got)
	}
	if got := ScorePreference(&profile.Preferences{WorkMode: "hybrid"}, pos); got != 90 {
		t.Errorf("hybrid mismatch = %v, want 90", got)
	}
	if got := ScorePreference(&profile.Preferences{Location: "Seattle"}, pos); got != 80 {
		t.Errorf("location mismatch = %v, want 80", got)
	}
	if got := ScorePreference(&profile.Preferences{WorkMode: "remote", Location: "Seattle"}, pos); got != 50 {
		t.Errorf("both mismatched = %v, want 50", got)
	}
}

func TestMatch_AllPerfectScoresTo100(t *testing.T) {
	candidate := &profile.CandidateProfile{
		Skills:               []string{"networking", "linux"},
		TotalYearsExperience: 4,
		EducationRecords:     []string{"Bachelor's degree"},
	}
	position := jobsearch.Position{
		RequiredSkills:     []string{"networking", "linux"},
		MinExperienceYears: float(2),
		RequiredEducation:  []string{"Bachelor's degree"},
	}

	got := newMatcher(t).Match(candidate, position)
	if got.Overall != 100 {
		t.Errorf("overall = %v, want 100", got.Overall)
	}
	if got.Band != BandExcellent {
		t.Errorf("band = %q, want %q", got.Band, BandExcellent)
	}
}

func TestMatch_NeutralAssessmentContribution(t *testing.T) {
	// A missing assessment must contribute exactly 0.20*50 = 10 points,
	// independent of the other components.
	candidate := &profile.CandidateProfile{
		Skills:               []string{"analysis"},
		TotalYearsExperience: 5,
		EducationRecords:     []string{"Bachelor's degree"},
	}
	position := jobsearch.Position{
		RequiredSkills:        []string{"analysis"},
		RequiredEducation:     []string{"Bachelor's degree"},
		CompositeRequirements: map[string]float64{"GT": 100},
	}

	got := newMatcher(t).Match(candidate, position)
	if got.Breakdown.Assessment != 50 {
		t.Fatalf("assessment = %v, want 50", got.Breakdown.Assessment)
	}
	// 0.35*100 + 0.20*100 + 0.15*100 + 0.20*50 + 0.10*100 = 90.
	if got.Overall != 90 {
		t.Errorf("overall = %v, want 90", got.Overall)
	}
}

func TestMatch_ScoreBounds(t *testing.T) {
	candidate := &profile.CandidateProfile{
		Preferences: &profile.Preferences{WorkMode: "remote", Location: "Anchorage"},
	}
	position := jobsearch.Position{
		RequiredSkills:        []string{"welding", "rigging"},
		MinExperienceYears:    float(10),
		RequiredEducation:     []string{"Bachelor's degree"},
		CompositeRequirements: map[string]float64{"GM": 99},
		WorkMode:              "onsite",
		Location:              "Mobile, AL",
	}

	got := newMatcher(t).Match(candidate, position)
	check := func(name string, v float64) {
		if v < 0 || v > 100 {
			t.Errorf("%s = %v, out of [0,100]", name, v)
		}
	}
	check("overall", got.Overall)
	check("skills", got.Breakdown.Skills)
	check("experience", got.Breakdown.Experience)
	check("education", got.Breakdown.Education)
	check("assessment", got.Breakdown.Assessment)
	check("preference", got.Breakdown.Preference)
	if got.Band != BandPoor && got.Band != BandFair {
		t.Errorf("band = %q for a weak match", got.Band)
	}
}

func TestBandThresholds(t *testing.T) {
	tests := []struct {
		overall float64
		want    string
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79, BandGood},
		{60, BandGood},
		{59, BandFair},
		{40, BandFair},
		{39, BandPoor},
		{0, BandPoor},
	}
	for _, tt := range tests {
		if got := bandFor(tt.overall); got != tt.want {
			t.Errorf("bandFor(%v) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}

func TestMatchMany_StableDescendingOrder(t *testing.T) {
	candidate := &profile.CandidateProfile{
		Skills:               []string{"networking", "linux", "troubleshooting"},
		TotalYearsExperience: 3,
		EducationRecords:     []string{"Bachelor's degree"},
	}
	positions := []jobsearch.Position{
		{ID: "a", RequiredSkills: []string{"welding"}},
		{ID: "b", RequiredSkills: []string{"networking", "linux"}},
		{ID: "c", RequiredSkills: []string{"welding"}},
		{ID: "d", RequiredSkills: []string{"networking", "linux"}},
	}

	m := newMatcher(t)
	first := m.MatchMany(candidate, positions)
	second := m.MatchMany(candidate, positions)

	order := func(scores []Score) []string {
		ids := make([]string, len(scores))
		for i, s := range scores {
			ids[i] = s.Position.ID
		}
		return ids
	}

	want := []string{"b", "d", "a", "c"}
	if !reflect.DeepEqual(order(first), want) {
		t.Errorf("order = %v, want %v", order(first), want)
	}
	if !reflect.DeepEqual(order(first), order(second)) {
		t.Errorf("ranking unstable across calls: %v then %v", order(first), order(second))
	}
	for i := 1; i < len(first); i++ {
		if first[i].Overall > first[i-1].Overall {
			t.Errorf("results not descending at index %d", i)
		}
	}
}

func TestMatch_InsightsDeterministic(t *testing.T) {
	candidate := &profile.CandidateProfile{
		Skills:               []string{"python"},
		TotalYearsExperience: 2,
	}
	position := jobsearch.Position{
		RequiredSkills:        []string{"Python", "Linux", "AWS"},
		MinExperienceYears:    float(5),
		CompositeRequirements: map[string]float64{"GT": 100},
	}

	m := newMatcher(t)
	a := m.Match(candidate, position)
	b := m.Match(candidate, position)
	if !reflect.DeepEqual(a.Insights, b.Insights) {
		t.Fatalf("insights differ across calls: %v vs %v", a.Insights, b.Insights)
	}
	if len(a.Insights) == 0 {
		t.Fatal("expected insights for a weak match")
	}
}
