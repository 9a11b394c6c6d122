package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/jdbryant/mospath/internal/aptitude"
	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/router"
	"github.com/jdbryant/mospath/internal/screen"
	"github.com/jdbryant/mospath/internal/screens/summary"
	"github.com/jdbryant/mospath/internal/store"
	"github.com/jdbryant/mospath/internal/ui/components"
	"github.com/jdbryant/mospath/internal/ui/layout"
	"github.com/jdbryant/mospath/internal/ui/theme"
)

// QuizScreen runs one adaptive quiz attempt. The engine is synchronous;
// this screen owns the per-question countdown and calls SubmitTimeout
// when the window expires.
type QuizScreen struct {
	bank     *questionbank.Bank
	results  store.ResultRepo
	profiles store.ProfileRepo
	logger   *zap.Logger

	runner      *engine.Runner
	question    *questionbank.Question
	mc          components.MultiChoice
	remaining   int
	showingQuit bool
	lastCorrect bool
	inFeedback  bool
	errMsg      string

	saveErr error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen with a fresh session.
func New(bank *questionbank.Bank, cfg engine.Config, results store.ResultRepo, profiles store.ProfileRepo, logger *zap.Logger) *QuizScreen {
	return &QuizScreen{
		bank:     bank,
		results:  results,
		profiles: profiles,
		logger:   logger,
		runner:   engine.NewRunner(bank, cfg, nil),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.nextQuestion()
	if s.question == nil {
		return func() tea.Msg { return quizEndMsg{} }
	}
	if !s.timed() {
		return nil
	}
	return tickCmd()
}

// timed reports whether the countdown is running. A zero QuestionTime
// disables it and the quiz waits indefinitely for each answer.
func (s *QuizScreen) timed() bool {
	return s.runner.Session().Config.QuestionTime > 0
}

func (s *QuizScreen) Title() string {
	return "Practice Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.inFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case quizEndMsg:
		return s.handleQuizEnd()

	case resultSavedMsg:
		s.saveErr = msg.Err
		if msg.Err != nil && s.logger != nil {
			s.logger.Warn("failed to save quiz result", zap.Error(msg.Err))
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s, func() tea.Msg { return quizEndMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.inFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if key == "esc" {
		s.showingQuit = true
		return s, nil
	}

	wasSubmitted := s.mc.Submitted
	s.mc, _ = s.mc.Update(msg)
	if s.mc.Submitted && !wasSubmitted {
		s.lastCorrect = s.runner.Submit(s.mc.ChosenIndex)
		s.inFeedback = true
	}
	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if !s.timed() {
		return s, nil
	}
	if s.question == nil || s.inFeedback || s.showingQuit {
		// Countdown pauses during feedback and the quit dialog; the
		// clock restarts with the next question.
		return s, tickCmd()
	}

	s.remaining--
	if s.remaining <= 0 {
		s.mc.Expire()
		s.runner.SubmitTimeout()
		s.lastCorrect = false
		s.inFeedback = true
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.inFeedback = false
	s.nextQuestion()
	if s.question == nil {
		return s, func() tea.Msg { return quizEndMsg{} }
	}
	return s, nil
}

func (s *QuizScreen) handleQuizEnd() (screen.Screen, tea.Cmd) {
	result := s.runner.Result()
	categoryScores := categoryScores(s.bank, result.AnswerLog)
	estimate := aptitude.Estimate(result.EarnedPoints, result.PossiblePoints, aptitude.GTScale)
	band := aptitude.BandFor(result.EarnedPoints, result.PossiblePoints)

	correct := 0
	for _, rec := range result.AnswerLog {
		if rec.Correct {
			correct++
		}
	}

	data := summary.Data{
		Result:         result,
		Estimate:       estimate,
		Band:           band,
		CategoryScores: categoryScores,
		Correct:        correct,
	}

	saveCmd := s.saveResult(result, estimate, band.Label, correct)

	return s, tea.Batch(saveCmd, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(data, s.profiles)}
	})
}

// saveResult persists the attempt for the history screen. Failure is
// logged, never surfaced as a quiz error.
func (s *QuizScreen) saveResult(result engine.Result, estimate int, band string, correct int) tea.Cmd {
	if s.results == nil {
		return nil
	}
	return func() tea.Msg {
		err := s.results.Save(context.Background(), &store.QuizResult{
			ID:             result.SessionID,
			TakenAt:        time.Now(),
			EarnedPoints:   result.EarnedPoints,
			PossiblePoints: result.PossiblePoints,
			Correct:        correct,
			Answered:       len(result.AnswerLog),
			Estimate:       estimate,
			Band:           band,
			Duration:       result.Duration,
		})
		return resultSavedMsg{Err: err}
	}
}

func (s *QuizScreen) nextQuestion() {
	s.question = s.runner.NextQuestion()
	if s.question == nil {
		return
	}
	s.mc = components.NewMultiChoice(s.question.Prompt, s.question.Options, s.question.CorrectIndex)
	s.remaining = int(s.runner.Session().Config.QuestionTime.Seconds())
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.showingQuit {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Body.Render("End this quiz early?") + "\n\n" +
				theme.Hint.Render("Progress so far will be scored as-is. (y/n)"))
	}
	if s.question == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Scoring...")
	}

	sess := s.runner.Session()
	answered := len(sess.AnswerLog)
	total := sess.Config.QuestionCount

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("Question %d of %d", answered+1, total)
	tier := fmt.Sprintf("[%s · %s]",
		questionbank.CategoryDisplayName(s.question.Category),
		questionbank.TierString(s.question.Tier))
	b.WriteString("  " + theme.Subtitle.Render(header) + "  " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(tier) + "\n\n")

	if s.timed() {
		timeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.remaining <= 5 && !s.inFeedback {
			timeStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		b.WriteString("  " + timeStyle.Render(fmt.Sprintf("⏱ %ds", s.remaining)) + "\n\n")
	}

	question := lipgloss.NewStyle().PaddingLeft(2).Render(s.mc.View())
	b.WriteString(question)

	if s.inFeedback {
		b.WriteString("\n")
		if s.lastCorrect {
			b.WriteString("  " + theme.Correct.Render(fmt.Sprintf("Correct! +%d points", s.question.Points)) + "\n")
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Not quite.") + "\n")
		}
		b.WriteString("  " + theme.Hint.Render("Press any key to continue") + "\n")
	}

	bar := components.NewProgressBar("", float64(answered)/float64(total), false, width-8)
	b.WriteString("\n  " + bar.View() + "\n")

	return b.String()
}

// categoryScores reduces the answer log to per-category percentages,
// the shape assessment results take on a candidate profile.
func categoryScores(bank *questionbank.Bank, log []engine.AnswerRecord) map[questionbank.Category]float64 {
	earned := make(map[questionbank.Category]int)
	possible := make(map[questionbank.Category]int)
	for _, rec := range log {
		q, ok := bank.Get(rec.QuestionID)
		if !ok {
			continue
		}
		possible[q.Category] += q.Points
		if rec.Correct {
			earned[q.Category] += q.Points
		}
	}

	scores := make(map[questionbank.Category]float64, len(possible))
	for cat, p := range possible {
		scores[cat] = 100 * float64(earned[cat]) / float64(p)
	}
	return scores
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
