package quiz

import (
	"math/rand"

	"github.com/jdbryant/mospath/internal/questionbank"
)

// Selector draws unused questions from a bank. The random source is
// injected so tests can assert deterministic draw sequences.
type Selector struct {
	bank *questionbank.Bank
	rng  *rand.Rand
}

// NewSelector creates a selector over the given bank.
func NewSelector(bank *questionbank.Bank, rng *rand.Rand) *Selector {
	return &Selector{bank: bank, rng: rng}
}

// Select draws an unused question, preferring the requested tier.
// When the preferred tier is exhausted it falls back to medium, then easy,
// then any unused question regardless of tier. Returns nil only when every
// question in the bank has been used — the caller ends the quiz early.
//
// Selection is advisory: the caller appends the chosen ID to the session's
// asked set.
func (sel *Selector) Select(tier questionbank.Tier, asked []string) *questionbank.Question {
	askedSet := make(map[string]bool, len(asked))
	for _, id := range asked {
		askedSet[id] = true
	}

	order := []questionbank.Tier{tier}
	if tier != questionbank.TierMedium {
		order = append(order, questionbank.TierMedium)
	}
	if tier != questionbank.TierEasy {
		order = append(order, questionbank.TierEasy)
	}

	for _, t := range order {
		if q := sel.draw(sel.bank.Tier(t), askedSet); q != nil {
			return q
		}
	}

	// Last resort: any unused question at all.
	return sel.draw(sel.bank.All(), askedSet)
}

// draw picks uniformly at random from the unused portion of pool.
func (sel *Selector) draw(pool []questionbank.Question, asked map[string]bool) *questionbank.Question {
	unused := pool[:0:0]
	for _, q := range pool {
		if !asked[q.ID] {
			unused = append(unused, q)
		}
	}
	if len(unused) == 0 {
		return nil
	}
	q := unused[sel.rng.Intn(len(unused))]
	return &q
}
