package cmd

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/jdbryant/mospath/internal/app"
	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/match"
	"github.com/jdbryant/mospath/internal/questionbank"
	engine "github.com/jdbryant/mospath/internal/quiz"
	"github.com/jdbryant/mospath/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startAtQuiz bool) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	bank, err := loadBank()
	if err != nil {
		return err
	}
	matcher, err := newMatcher()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Bank:        bank,
		QuizConfig:  quizConfig(),
		Store:       st,
		Source:      newSource(),
		Matcher:     matcher,
		Logger:      logger,
		StartAtQuiz: startAtQuiz,
	})
}

// loadBank returns the configured external bank or the built-in seed.
func loadBank() (*questionbank.Bank, error) {
	if path := config.GetString("bank.path"); path != "" {
		bank, err := questionbank.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		return bank, nil
	}
	return questionbank.Seed(), nil
}

func quizConfig() engine.Config {
	c := engine.DefaultConfig()
	if n := config.GetInt("quiz.questions"); n > 0 {
		c.QuestionCount = n
	}
	if n := config.GetInt("quiz.threshold"); n > 0 {
		c.Threshold = n
	}
	if n := config.GetInt("quiz.seconds_per_question"); n > 0 {
		c.QuestionTime = time.Duration(n) * time.Second
	}
	return c
}

// newSource returns the live search client when a URL is configured,
// otherwise the built-in MOS crosswalk catalog.
func newSource() jobsearch.Source {
	if url := config.GetString("search.url"); url != "" {
		return jobsearch.NewClient(logger, url, config.GetString("search.token"))
	}
	return jobsearch.SeedCatalog()
}

// newMatcher applies configured weight overrides on top of the defaults.
func newMatcher() (*match.Matcher, error) {
	weights := match.DefaultWeights()
	if config.IsSet("match.weights") {
		if err := mapstructure.Decode(config.GetStringMap("match.weights"), &weights); err != nil {
			return nil, fmt.Errorf("decode match weights: %w", err)
		}
	}
	matcher, err := match.NewMatcher(weights)
	if err != nil {
		return nil, fmt.Errorf("configured match weights rejected: %w", err)
	}
	return matcher, nil
}
