package match

import (
	"math"
	"strings"

	"github.com/jdbryant/mospath/internal/aptitude"
	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/profile"
)

// SkillsResult carries the skills score plus the matched/missing lists
// shown to the candidate.
type SkillsResult struct {
	Score   float64
	Matched []string
	Missing []string
}

// skillMatches reports whether a candidate skill covers a position skill.
// Matching is bidirectional substring containment on lowercased text —
// deliberately permissive so "python scripting" covers "python". Kept
// behind this function so a stricter strategy can replace it without
// touching the weighting logic.
func skillMatches(candidateSkill, positionSkill string) bool {
	return strings.Contains(positionSkill, candidateSkill) ||
		strings.Contains(candidateSkill, positionSkill)
}

// ScoreSkills scores the candidate's skill coverage of the position's
// required skills. No required skills means a full score.
func ScoreSkills(candidateSkills, requiredSkills []string) SkillsResult {
	normalized := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(s)))
	}

	res := SkillsResult{}
	for _, req := range requiredSkills {
		want := strings.ToLower(strings.TrimSpace(req))
		matched := false
		for _, have := range normalized {
			if have != "" && skillMatches(have, want) {
				matched = true
				break
			}
		}
		if matched {
			res.Matched = append(res.Matched, want)
		} else {
			res.Missing = append(res.Missing, want)
		}
	}

	if len(requiredSkills) == 0 {
		res.Score = 100
		return res
	}
	res.Score = math.Round(100 * float64(len(res.Matched)) / float64(len(requiredSkills)))
	return res
}

// ScoreExperience scores the candidate's years of experience against the
// position's window. Underqualification costs 20 points per missing year;
// overqualification costs 5 per extra year and never drops below 70.
func ScoreExperience(years float64, minYears, maxYears *float64) float64 {
	if minYears == nil && maxYears == nil {
		return 100
	}
	if minYears != nil && years < *minYears {
		return math.Max(0, 100-(*minYears-years)*20)
	}
	if maxYears != nil && years > *maxYears {
		return math.Max(70, 100-(years-*maxYears)*5)
	}
	return 100
}

// educationLevel reduces a free-text education record to an ordinal level
// via keyword containment. Unrecognized text is level 0.
func educationLevel(record string) int {
	r := strings.ToLower(record)
	switch {
	case strings.Contains(r, "phd") || strings.Contains(r, "doctorate"):
		return 5
	case strings.Contains(r, "master"):
		return 4
	case strings.Contains(r, "bachelor"):
		return 3
	case strings.Contains(r, "associate"):
		return 2
	case strings.Contains(r, "high school") || strings.Contains(r, "ged"):
		return 1
	default:
		return 0
	}
}

func maxEducationLevel(records []string) int {
	level := 0
	for _, r := range records {
		if l := educationLevel(r); l > level {
			level = l
		}
	}
	return level
}

// ScoreEducation compares the candidate's best education level against the
// position's highest requirement. Meeting or exceeding scores 100, one
// level short 70, further short 40. No requirement scores 100.
func ScoreEducation(candidateRecords, requiredEducation []string) float64 {
	required := maxEducationLevel(requiredEducation)
	if required == 0 {
		return 100
	}
	have := maxEducationLevel(candidateRecords)
	switch {
	case have >= required:
		return 100
	case required-have == 1:
		return 70
	default:
		return 40
	}
}

// ScoreAssessment scores the candidate's composite scores against the
// position's line-score minimums. No requirements scores 100; a candidate
// with no assessment data scores the neutral 50 — absent data is not
// failure. Otherwise the score is the met fraction of the requirements.
func ScoreAssessment(candidate *profile.CandidateProfile, requirements map[string]float64) float64 {
	if len(requirements) == 0 {
		return 100
	}
	if !candidate.HasAssessments() {
		return 50
	}

	scores := candidate.MergedCategoryScores()
	met := 0
	for name, minScore := range requirements {
		if aptitude.MeetsRequirement(scores, name, minScore) {
			met++
		}
	}
	return math.Round(100 * float64(met) / float64(len(requirements)))
}

// ScorePreference scores the candidate's preference fit. Starting from
// 100: a hard work-mode mismatch costs 30, a hybrid on either side
// softens that to 10, and a location mismatch costs 20. Floored at 0.
func ScorePreference(prefs *profile.Preferences, position jobsearch.Position) float64 {
	score := 100.0
	if prefs == nil {
		return score
	}

	if prefs.WorkMode != "" && position.WorkMode != "" {
		want := strings.ToLower(prefs.WorkMode)
		have := strings.ToLower(position.WorkMode)
		if want != have {
			if want == "hybrid" || have == "hybrid" {
				score -= 10
			} else {
				score -= 30
			}
		}
	}

	if prefs.Location != "" && position.Location != "" {
		want := strings.ToLower(prefs.Location)
		have := strings.ToLower(position.Location)
		if !strings.Contains(have, want) && !strings.Contains(want, have) {
			score -= 20
		}
	}

	return math.Max(0, score)
}
