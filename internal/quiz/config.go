package quiz

import (
	"time"

	"github.com/jdbryant/mospath/internal/questionbank"
)

// Config controls one quiz attempt.
//
// The web flows historically ran two variants of the same adaptive policy
// with different streak thresholds (2 on the quick estimator, 3 on the
// practice drill). The threshold is therefore explicit configuration, never
// a literal in the scheduler itself.
type Config struct {
	// Threshold is the consecutive-correct (or -incorrect) streak length
	// that triggers a tier promotion (or demotion).
	Threshold int

	// QuestionCount is the number of questions to serve before the quiz
	// ends. The quiz may end earlier if the bank is exhausted.
	QuestionCount int

	// QuestionTime is the answer window per question. Zero disables the
	// countdown; expiry is handled by the caller, which submits a timeout.
	QuestionTime time.Duration

	// StartTier is the difficulty tier the first question is drawn from.
	StartTier questionbank.Tier
}

// DefaultConfig returns the standard quick-estimator configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:     2,
		QuestionCount: 10,
		QuestionTime:  30 * time.Second,
		StartTier:     questionbank.TierMedium,
	}
}

// DrillConfig returns the longer practice-drill configuration, which uses
// the slower threshold of 3.
func DrillConfig() Config {
	return Config{
		Threshold:     3,
		QuestionCount: 20,
		QuestionTime:  45 * time.Second,
		StartTier:     questionbank.TierEasy,
	}
}
