package quiz

import (
	"time"

	"github.com/jdbryant/mospath/internal/questionbank"
)

// AnswerRecord logs the outcome of one answered question.
type AnswerRecord struct {
	QuestionID string
	Tier       questionbank.Tier
	Correct    bool
	TimedOut   bool
}

// Session tracks the mutable state of one quiz attempt. A Session is
// created at quiz start and discarded on restart; nothing here persists.
//
// Invariants: AskedIDs grows by exactly one per round, CurrentTier is
// always a valid tier, and EarnedPoints never exceeds PossiblePoints.
type Session struct {
	// ID is the attempt identifier (UUID), used for result history.
	ID string

	// Config is the attempt configuration, fixed at start.
	Config Config

	// AskedIDs lists served question IDs in ask order.
	AskedIDs []string

	// CurrentTier is the active difficulty tier for the next draw.
	CurrentTier questionbank.Tier

	// ConsecutiveCorrect and ConsecutiveIncorrect are the streak counters
	// driving promotion and demotion. At most one is nonzero at a time.
	ConsecutiveCorrect   int
	ConsecutiveIncorrect int

	// EarnedPoints and PossiblePoints accumulate the score.
	EarnedPoints   int
	PossiblePoints int

	// AnswerLog records every answered question in order.
	AnswerLog []AnswerRecord

	// StartTime is when the attempt began.
	StartTime time.Time
}

// NewSession creates a fresh session for the given configuration.
func NewSession(id string, cfg Config) *Session {
	return &Session{
		ID:          id,
		Config:      cfg,
		CurrentTier: cfg.StartTier,
		StartTime:   time.Now(),
	}
}

// Asked reports whether a question has already been served this session.
func (s *Session) Asked(id string) bool {
	for _, asked := range s.AskedIDs {
		if asked == id {
			return true
		}
	}
	return false
}

// Finished reports whether the configured question count has been served
// and answered.
func (s *Session) Finished() bool {
	return len(s.AnswerLog) >= s.Config.QuestionCount
}

// Advance updates the session's streaks and difficulty tier after an
// answer. A timeout is an incorrect answer. At most one of promotion and
// demotion fires per call, and the scheduler holds at the boundary tiers.
func Advance(s *Session, correct bool) {
	if correct {
		s.ConsecutiveCorrect++
		s.ConsecutiveIncorrect = 0
	} else {
		s.ConsecutiveIncorrect++
		s.ConsecutiveCorrect = 0
	}

	switch {
	case s.ConsecutiveCorrect >= s.Config.Threshold && s.CurrentTier < questionbank.TierHard:
		s.CurrentTier++
		s.ConsecutiveCorrect = 0
	case s.ConsecutiveIncorrect >= s.Config.Threshold && s.CurrentTier > questionbank.TierEasy:
		s.CurrentTier--
		s.ConsecutiveIncorrect = 0
	}
}

// recordAnswer applies one answered question to the score and log.
func recordAnswer(s *Session, q questionbank.Question, correct, timedOut bool) {
	s.PossiblePoints += q.Points
	if correct {
		s.EarnedPoints += q.Points
	}
	s.AnswerLog = append(s.AnswerLog, AnswerRecord{
		QuestionID: q.ID,
		Tier:       q.Tier,
		Correct:    correct,
		TimedOut:   timedOut,
	})
	Advance(s, correct)
}
