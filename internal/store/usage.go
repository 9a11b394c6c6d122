package store

import (
	"context"
	"database/sql"
	"time"
)

// LLMUsage is one recorded LLM request, kept for cost accounting.
type LLMUsage struct {
	At           time.Time
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
}

// UsageTotals aggregates recorded LLM usage.
type UsageTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// UsageRepo tracks LLM token spend across runs.
type UsageRepo interface {
	// Record stores one completed request.
	Record(ctx context.Context, u *LLMUsage) error

	// Totals sums all recorded usage.
	Totals(ctx context.Context) (UsageTotals, error)
}

type usageRepo struct {
	db *sql.DB
}

func (r *usageRepo) Record(ctx context.Context, u *LLMUsage) error {
	at := u.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_usage (at, provider, model, input_tokens, output_tokens, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		at.UTC(), u.Provider, u.Model, u.InputTokens, u.OutputTokens, u.Duration.Milliseconds(),
	)
	return err
}

func (r *usageRepo) Totals(ctx context.Context) (UsageTotals, error) {
	var t UsageTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_usage`,
	).Scan(&t.Requests, &t.InputTokens, &t.OutputTokens)
	return t, err
}
