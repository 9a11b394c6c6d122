package store

import (
	"context"
	"database/sql"
	"time"
)

// QuizResult is one completed quiz attempt.
type QuizResult struct {
	ID             string
	TakenAt        time.Time
	EarnedPoints   int
	PossiblePoints int
	Correct        int
	Answered       int
	Estimate       int
	Band           string
	Duration       time.Duration
}

// ResultRepo persists quiz history.
type ResultRepo interface {
	// Save stores a completed quiz result.
	Save(ctx context.Context, r *QuizResult) error

	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]QuizResult, error)

	// Best returns the highest estimate on record, or nil if no quizzes
	// have been taken.
	Best(ctx context.Context) (*QuizResult, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, res *QuizResult) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results
			(id, taken_at, earned_points, possible_points, correct, answered, estimate, band, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.TakenAt.UTC(), res.EarnedPoints, res.PossiblePoints,
		res.Correct, res.Answered, res.Estimate, res.Band, res.Duration.Milliseconds(),
	)
	return err
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]QuizResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, taken_at, earned_points, possible_points, correct, answered, estimate, band, duration_ms
		 FROM quiz_results ORDER BY taken_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuizResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *resultRepo) Best(ctx context.Context) (*QuizResult, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, taken_at, earned_points, possible_points, correct, answered, estimate, band, duration_ms
		 FROM quiz_results ORDER BY estimate DESC, taken_at DESC LIMIT 1`)

	res, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (QuizResult, error) {
	var res QuizResult
	var durationMs int64
	err := row.Scan(&res.ID, &res.TakenAt, &res.EarnedPoints, &res.PossiblePoints,
		&res.Correct, &res.Answered, &res.Estimate, &res.Band, &durationMs)
	if err != nil {
		return QuizResult{}, err
	}
	res.Duration = time.Duration(durationMs) * time.Millisecond
	return res, nil
}
