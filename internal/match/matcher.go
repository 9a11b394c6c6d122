package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/profile"
)

// Weights distributes the overall score across the five component scores.
type Weights struct {
	Skills     float64
	Experience float64
	Education  float64
	Assessment float64
	Preference float64
}

// DefaultWeights returns the production weighting.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.35,
		Experience: 0.20,
		Education:  0.15,
		Assessment: 0.20,
		Preference: 0.10,
	}
}

// Validate checks that the weights sum to 1 within floating-point slack.
func (w Weights) Validate() error {
	sum := w.Skills + w.Experience + w.Education + w.Assessment + w.Preference
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("match weights sum to %.4f, want 1", sum)
	}
	return nil
}

// Breakdown holds the five component scores that feed the overall score.
type Breakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Assessment float64 `json:"assessment"`
	Preference float64 `json:"preference"`
}

// Score is the result of matching one candidate against one position. It
// is recomputed on every call and never persisted.
type Score struct {
	Position      jobsearch.Position `json:"position"`
	Overall       float64            `json:"overall"`
	Breakdown     Breakdown          `json:"breakdown"`
	MatchedSkills []string           `json:"matched_skills,omitempty"`
	MissingSkills []string           `json:"missing_skills,omitempty"`
	Band          string             `json:"band"`
	Insights      []string           `json:"insights,omitempty"`
}

// Recommendation bands, by inclusive lower bound on the overall score.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

func bandFor(overall float64) string {
	switch {
	case overall >= 80:
		return BandExcellent
	case overall >= 60:
		return BandGood
	case overall >= 40:
		return BandFair
	default:
		return BandPoor
	}
}

// Matcher scores candidates against positions. It is a pure function of
// its inputs; a single Matcher is safe for concurrent use.
type Matcher struct {
	weights Weights
}

// NewMatcher builds a matcher, rejecting weights that do not sum to 1.
func NewMatcher(weights Weights) (*Matcher, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{weights: weights}, nil
}

// Match scores one candidate against one position.
func (m *Matcher) Match(candidate *profile.CandidateProfile, position jobsearch.Position) Score {
	skills := ScoreSkills(candidate.Skills, position.RequiredSkills)
	breakdown := Breakdown{
		Skills:     skills.Score,
		Experience: ScoreExperience(candidate.TotalYearsExperience, position.MinExperienceYears, position.MaxExperienceYears),
		Education:  ScoreEducation(candidate.EducationRecords, position.RequiredEducation),
		Assessment: ScoreAssessment(candidate, position.CompositeRequirements),
		Preference: ScorePreference(candidate.Preferences, position),
	}

	overall := math.Round(
		m.weights.Skills*breakdown.Skills +
			m.weights.Experience*breakdown.Experience +
			m.weights.Education*breakdown.Education +
			m.weights.Assessment*breakdown.Assessment +
			m.weights.Preference*breakdown.Preference,
	)

	return Score{
		Position:      position,
		Overall:       overall,
		Breakdown:     breakdown,
		MatchedSkills: skills.Matched,
		MissingSkills: skills.Missing,
		Band:          bandFor(overall),
		Insights:      insights(breakdown, skills, candidate, position),
	}
}

// MatchMany scores the candidate against every position and returns the
// results sorted by overall score, best first. The sort is stable so
// equal scores keep the input order.
func (m *Matcher) MatchMany(candidate *profile.CandidateProfile, positions []jobsearch.Position) []Score {
	scores := make([]Score, 0, len(positions))
	for _, p := range positions {
		scores = append(scores, m.Match(candidate, p))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Overall > scores[j].Overall
	})
	return scores
}

// insights selects fixed explanatory strings from the breakdown. The
// selection is deterministic; callers may rely on stable output for the
// same inputs.
func insights(b Breakdown, skills SkillsResult, candidate *profile.CandidateProfile, position jobsearch.Position) []string {
	var out []string

	switch {
	case b.Skills >= 80:
		out = append(out, "Strong skill alignment with this position's requirements.")
	case len(skills.Missing) > 0:
		out = append(out, fmt.Sprintf("Consider building experience in: %s.", strings.Join(skills.Missing, ", ")))
	}

	if position.MinExperienceYears != nil && candidate.TotalYearsExperience < *position.MinExperienceYears {
		out = append(out, fmt.Sprintf("This position typically asks for %.0f+ years of experience.", *position.MinExperienceYears))
	} else if b.Experience == 100 {
		out = append(out, "Your experience level fits this position's range.")
	}

	if b.Education < 100 && len(position.RequiredEducation) > 0 {
		out = append(out, "Additional education or an equivalency credential would strengthen this match.")
	}

	if len(position.CompositeRequirements) > 0 {
		switch {
		case !candidate.HasAssessments():
			out = append(out, "Take the practice assessment to see how your line scores stack up.")
		case b.Assessment < 50:
			out = append(out, "Focused study on the required line-score areas would improve this match.")
		case b.Assessment == 100:
			out = append(out, "Your assessment scores meet every line-score requirement.")
		}
	}

	if b.Preference < 100 {
		out = append(out, "This position differs from your stated work-mode or location preferences.")
	}

	return out
}
