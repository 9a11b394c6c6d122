package aptitude

import (
	"math"

	"github.com/jdbryant/mospath/internal/questionbank"
)

// CompositeDefinition names an aggregate of subtest categories. The
// composite's score is the unweighted arithmetic mean of its members'
// percentage scores.
type CompositeDefinition struct {
	Name       string
	Categories []questionbank.Category
}

// composites is the service line-score table, loaded once and read-only.
// Membership follows the Army's published line-score formulas, reduced to
// the subtests this app models.
var composites = map[string]CompositeDefinition{
	"GT": {Name: "GT", Categories: []questionbank.Category{
		questionbank.CategoryArithmeticReasoning,
		questionbank.CategoryWordKnowledge,
		questionbank.CategoryParagraphComp,
	}},
	"EL": {Name: "EL", Categories: []questionbank.Category{
		questionbank.CategoryGeneralScience,
		questionbank.CategoryArithmeticReasoning,
		questionbank.CategoryMathKnowledge,
		questionbank.CategoryElectronicsInfo,
	}},
	"CO": {Name: "CO", Categories: []questionbank.Category{
		questionbank.CategoryArithmeticReasoning,
		questionbank.CategoryAutoShop,
		questionbank.CategoryMechanicalComp,
	}},
	"GM": {Name: "GM", Categories: []questionbank.Category{
		questionbank.CategoryGeneralScience,
		questionbank.CategoryAutoShop,
		questionbank.CategoryMathKnowledge,
		questionbank.CategoryElectronicsInfo,
	}},
	"SM": {Name: "SM", Categories: []questionbank.Category{
		questionbank.CategoryAutoShop,
		questionbank.CategoryMechanicalComp,
		questionbank.CategoryElectronicsInfo,
	}},
	"ST": {Name: "ST", Categories: []questionbank.Category{
		questionbank.CategoryGeneralScience,
		questionbank.CategoryWordKnowledge,
		questionbank.CategoryParagraphComp,
		questionbank.CategoryMathKnowledge,
	}},
}

// Composites returns the composite definition table.
func Composites() map[string]CompositeDefinition {
	out := make(map[string]CompositeDefinition, len(composites))
	for k, v := range composites {
		out[k] = v
	}
	return out
}

// LookupComposite returns a composite definition by name.
func LookupComposite(name string) (CompositeDefinition, bool) {
	def, ok := composites[name]
	return def, ok
}

// CompositeScore computes a composite from per-category percentage scores
// (0-100). A category missing from the map scores 0 — partial assessment
// data lowers the composite rather than erroring out.
func CompositeScore(categoryScores map[questionbank.Category]float64, def CompositeDefinition) float64 {
	if len(def.Categories) == 0 {
		return 0
	}
	var sum float64
	for _, cat := range def.Categories {
		sum += categoryScores[cat]
	}
	return math.Round(sum / float64(len(def.Categories)))
}

// MeetsRequirement reports whether the category scores satisfy a named
// composite minimum. An unknown composite name degrades to a literal
// category lookup instead of failing, so positions can gate on a single
// subtest score using the same field.
func MeetsRequirement(categoryScores map[questionbank.Category]float64, compositeName string, minScore float64) bool {
	if def, ok := composites[compositeName]; ok {
		return CompositeScore(categoryScores, def) >= minScore
	}
	return categoryScores[questionbank.Category(compositeName)] >= minScore
}
