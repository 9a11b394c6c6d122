package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jdbryant/mospath/internal/profile"
)

// DefaultProfileName is the profile the TUI reads and writes. The CLI
// can address others by name.
const DefaultProfileName = "default"

// ProfileRepo persists named candidate profiles so a candidate does not
// re-enter or re-parse their resume between runs.
type ProfileRepo interface {
	// Save stores or replaces the profile under name.
	Save(ctx context.Context, name string, p *profile.CandidateProfile) error

	// Load returns the profile stored under name, or nil if absent.
	Load(ctx context.Context, name string) (*profile.CandidateProfile, error)

	// Names lists stored profile names, most recently updated first.
	Names(ctx context.Context) ([]string, error)
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Save(ctx context.Context, name string, p *profile.CandidateProfile) error {
	if err := profile.Validate(p); err != nil {
		return fmt.Errorf("refusing to save invalid profile: %w", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (name, updated_at, data) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at, data = excluded.data`,
		name, time.Now().UTC(), string(data),
	)
	return err
}

func (r *profileRepo) Load(ctx context.Context, name string) (*profile.CandidateProfile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p profile.CandidateProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode profile %q: %w", name, err)
	}
	return &p, nil
}

func (r *profileRepo) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM profiles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
