package quiz

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz(questions int) *QuizScreen {
	cfg := engine.DefaultConfig()
	cfg.QuestionCount = questions
	return New(questionbank.Seed(), cfg, nil, nil, nil)
}

func TestInitServesFirstQuestion(t *testing.T) {
	s := testQuiz(2)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should start the countdown")
	}
	if s.question == nil {
		t.Fatal("expected a first question")
	}
	if s.remaining != 30 {
		t.Errorf("remaining = %d, want 30", s.remaining)
	}
}

func TestDigitAnswerEntersFeedback(t *testing.T) {
	s := testQuiz(2)
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)

	if !qs.inFeedback {
		t.Error("expected feedback after a digit answer")
	}
	if got := len(qs.runner.Session().AnswerLog); got != 1 {
		t.Errorf("answer log length = %d, want 1", got)
	}
}

func TestTimerExpiryCountsAsTimeout(t *testing.T) {
	s := testQuiz(2)
	s.Init()
	s.remaining = 1

	var scr screen.Screen = s
	scr, cmd := scr.Update(timerTickMsg(time.Now()))
	qs := scr.(*QuizScreen)

	if cmd == nil {
		t.Error("countdown should keep ticking")
	}
	if !qs.inFeedback {
		t.Error("expected feedback after expiry")
	}
	log := qs.runner.Session().AnswerLog
	if len(log) != 1 {
		t.Fatalf("answer log length = %d, want 1", len(log))
	}
	if !log[0].TimedOut || log[0].Correct {
		t.Errorf("expected an incorrect timeout record, got %+v", log[0])
	}
}

func TestZeroQuestionTimeDisablesCountdown(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.QuestionCount = 2
	cfg.QuestionTime = 0
	s := New(questionbank.Seed(), cfg, nil, nil, nil)

	if cmd := s.Init(); cmd != nil {
		t.Fatal("Init should not start a countdown when the timer is disabled")
	}

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd != nil {
		t.Error("a stray tick should not reschedule the countdown")
	}
	if s.inFeedback {
		t.Error("a stray tick should not submit a timeout")
	}
	if got := len(s.runner.Session().AnswerLog); got != 0 {
		t.Errorf("answer log length = %d, want 0", got)
	}

	if view := s.View(80, 24); strings.Contains(view, "⏱") {
		t.Error("view should not render a countdown when the timer is disabled")
	}
}

func TestTickPausesDuringFeedback(t *testing.T) {
	s := testQuiz(2)
	s.Init()
	s.inFeedback = true
	s.remaining = 5

	s.Update(timerTickMsg(time.Now()))
	if s.remaining != 5 {
		t.Errorf("remaining = %d, countdown should pause during feedback", s.remaining)
	}
}

func TestQuitDialog(t *testing.T) {
	s := testQuiz(2)
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.showingQuit {
		t.Fatal("expected quit dialog after esc")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.showingQuit {
		t.Error("n should dismiss the quit dialog")
	}

	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	qs = scr.(*QuizScreen)
	_, cmd := qs.Update(keyPress('y'))
	if cmd == nil {
		t.Error("y should end the quiz")
	}
}

func TestFeedbackDismissAdvances(t *testing.T) {
	s := testQuiz(2)
	s.Init()
	first := s.question.ID

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)

	_, cmd := qs.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command dismissing feedback")
	}
	scr, _ = qs.Update(cmd())
	qs = scr.(*QuizScreen)

	if qs.inFeedback {
		t.Error("feedback should be dismissed")
	}
	if qs.question == nil || qs.question.ID == first {
		t.Error("expected a different second question")
	}
}

func TestQuizEndsAfterConfiguredCount(t *testing.T) {
	s := testQuiz(2)
	s.Init()

	var scr screen.Screen = s
	for i := 0; i < 2; i++ {
		scr, _ = scr.Update(keyPress('1'))
		_, cmd := scr.Update(keyPress(' '))
		if cmd == nil {
			t.Fatalf("question %d: expected feedback dismiss command", i+1)
		}
		scr, cmd = scr.Update(cmd())
		if i == 1 {
			// The bank is done; dismissing the last feedback ends the quiz.
			if cmd == nil {
				t.Fatal("expected the quiz-end command")
			}
			scr, cmd = scr.Update(cmd())
			if cmd == nil {
				t.Fatal("expected a summary transition command")
			}
		}
	}

	qs := scr.(*QuizScreen)
	result := qs.runner.Result()
	if len(result.AnswerLog) != 2 {
		t.Errorf("answer log length = %d, want 2", len(result.AnswerLog))
	}
	if result.PossiblePoints == 0 {
		t.Error("expected possible points to accumulate")
	}
}
