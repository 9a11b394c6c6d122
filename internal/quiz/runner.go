package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jdbryant/mospath/internal/questionbank"
)

// Result is the finished-quiz output consumed by the aptitude estimator.
type Result struct {
	SessionID      string
	EarnedPoints   int
	PossiblePoints int
	AnswerLog      []AnswerRecord
	Duration       time.Duration
}

// Runner drives one quiz attempt: it draws questions, accepts answers and
// timeouts, and advances the difficulty scheduler. All methods are
// synchronous; the per-question countdown is owned by the caller, which
// invokes SubmitTimeout when the window expires.
type Runner struct {
	bank     *questionbank.Bank
	selector *Selector
	session  *Session
	current  *questionbank.Question
}

// NewRunner creates a runner with a fresh session.
// A nil rng selects a time-seeded source.
func NewRunner(bank *questionbank.Bank, cfg Config, rng *rand.Rand) *Runner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Runner{
		bank:     bank,
		selector: NewSelector(bank, rng),
		session:  NewSession(uuid.New().String(), cfg),
	}
}

// Session exposes the live session state (for display).
func (r *Runner) Session() *Session {
	return r.session
}

// NextQuestion draws the next question at the current difficulty.
// It returns nil when the quiz is over: either the configured count was
// reached or the bank is exhausted.
func (r *Runner) NextQuestion() *questionbank.Question {
	if r.session.Finished() {
		return nil
	}

	q := r.selector.Select(r.session.CurrentTier, r.session.AskedIDs)
	if q == nil {
		return nil
	}

	r.session.AskedIDs = append(r.session.AskedIDs, q.ID)
	r.current = q
	return q
}

// Submit answers the current question with the chosen option index and
// returns whether it was correct.
func (r *Runner) Submit(optionIndex int) bool {
	if r.current == nil {
		return false
	}
	correct := optionIndex == r.current.CorrectIndex
	recordAnswer(r.session, *r.current, correct, false)
	r.current = nil
	return correct
}

// SubmitTimeout records the current question as incorrect with no
// selection. Scheduler and score updates proceed exactly as for a wrong
// answer.
func (r *Runner) SubmitTimeout() {
	if r.current == nil {
		return
	}
	recordAnswer(r.session, *r.current, false, true)
	r.current = nil
}

// Result finalizes the attempt.
func (r *Runner) Result() Result {
	return Result{
		SessionID:      r.session.ID,
		EarnedPoints:   r.session.EarnedPoints,
		PossiblePoints: r.session.PossiblePoints,
		AnswerLog:      r.session.AnswerLog,
		Duration:       time.Since(r.session.StartTime),
	}
}
