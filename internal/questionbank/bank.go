package questionbank

import (
	"fmt"
)

// Bank is an immutable catalog of scorable questions.
// A Bank is built once at process start and never mutated afterwards,
// so it is safe for concurrent readers.
type Bank struct {
	questions []Question
	byID      map[string]Question
	byTier    map[Tier][]Question
}

// New builds a Bank from a question list. Construction fails on duplicate
// IDs, out-of-range correct indexes, or missing options — a malformed bank
// is a configuration error, not something to tolerate at runtime.
func New(questions []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, 0, len(questions)),
		byID:      make(map[string]Question, len(questions)),
		byTier:    make(map[Tier][]Question),
	}

	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: empty id", i)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("question %q: duplicate id", q.ID)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %q: needs at least 2 options, got %d", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %q: correct index %d out of range", q.ID, q.CorrectIndex)
		}
		if q.Points <= 0 {
			q.Points = TierPoints(q.Tier)
		}

		b.questions = append(b.questions, q)
		b.byID[q.ID] = q
		b.byTier[q.Tier] = append(b.byTier[q.Tier], q)
	}

	return b, nil
}

// Len returns the total number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Get returns the question with the given ID.
func (b *Bank) Get(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// All returns a copy of every question in the bank.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Tier returns a copy of the questions at the given difficulty tier.
func (b *Bank) Tier(t Tier) []Question {
	qs := b.byTier[t]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Categories returns the set of categories present in the bank.
func (b *Bank) Categories() map[Category]int {
	counts := make(map[Category]int)
	for _, q := range b.questions {
		counts[q.Category]++
	}
	return counts
}
