package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jdbryant/mospath/internal/questionbank"
)

// AssessmentResult holds per-category percentage scores from one
// assessment attempt (a quiz run or an imported score report).
type AssessmentResult struct {
	CategoryScores map[questionbank.Category]float64 `json:"category_scores" validate:"dive,gte=0,lte=100"`
}

// Preferences captures the candidate's job preferences. Empty fields mean
// no preference.
type Preferences struct {
	WorkMode string `json:"work_mode,omitempty"`
	Location string `json:"location,omitempty"`
}

// CandidateProfile is the matcher's view of a candidate. Profiles are
// assembled by collaborators (form entry, résumé parsing, quiz results)
// and passed in per invocation; the matcher never stores them.
type CandidateProfile struct {
	Skills               []string           `json:"skills"`
	TotalYearsExperience float64            `json:"total_years_experience" validate:"gte=0,lte=60"`
	EducationRecords     []string           `json:"education_records"`
	AssessmentResults    []AssessmentResult `json:"assessment_results,omitempty" validate:"dive"`
	Preferences          *Preferences       `json:"preferences,omitempty"`
}

var validate = validator.New()

// Validate checks field ranges on a profile. Missing data is fine —
// the scorers substitute neutral defaults — but out-of-range values are
// caller bugs and rejected up front.
func Validate(p *CandidateProfile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid candidate profile: %w", err)
	}
	return nil
}

// MergedCategoryScores flattens a candidate's assessment results into one
// category score map. Later results win per category, so a retaken quiz
// supersedes the original score for the categories it covers.
func (p *CandidateProfile) MergedCategoryScores() map[questionbank.Category]float64 {
	if len(p.AssessmentResults) == 0 {
		return nil
	}
	merged := make(map[questionbank.Category]float64)
	for _, res := range p.AssessmentResults {
		for cat, score := range res.CategoryScores {
			merged[cat] = score
		}
	}
	return merged
}

// HasAssessments reports whether the candidate has any assessment data.
func (p *CandidateProfile) HasAssessments() bool {
	for _, res := range p.AssessmentResults {
		if len(res.CategoryScores) > 0 {
			return true
		}
	}
	return false
}
