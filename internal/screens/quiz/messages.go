package quiz

import "time"

// timerTickMsg is sent every second to drive the question countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the answer feedback is dismissed.
type feedbackDoneMsg struct{}

// quizEndMsg is sent to trigger the end-of-quiz flow.
type quizEndMsg struct{}

// resultSavedMsg reports the outcome of persisting the quiz result.
type resultSavedMsg struct {
	Err error
}
