package questionbank

// Category is a short ASVAB-style subtest code.
type Category string

const (
	CategoryArithmeticReasoning Category = "AR"
	CategoryWordKnowledge       Category = "WK"
	CategoryParagraphComp       Category = "PC"
	CategoryMathKnowledge       Category = "MK"
	CategoryGeneralScience      Category = "GS"
	CategoryElectronicsInfo     Category = "EI"
	CategoryAutoShop            Category = "AS"
	CategoryMechanicalComp      Category = "MC"
)

// AllCategories returns all subtest categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryArithmeticReasoning,
		CategoryWordKnowledge,
		CategoryParagraphComp,
		CategoryMathKnowledge,
		CategoryGeneralScience,
		CategoryElectronicsInfo,
		CategoryAutoShop,
		CategoryMechanicalComp,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryArithmeticReasoning:
		return "Arithmetic Reasoning"
	case CategoryWordKnowledge:
		return "Word Knowledge"
	case CategoryParagraphComp:
		return "Paragraph Comprehension"
	case CategoryMathKnowledge:
		return "Mathematics Knowledge"
	case CategoryGeneralScience:
		return "General Science"
	case CategoryElectronicsInfo:
		return "Electronics Information"
	case CategoryAutoShop:
		return "Auto & Shop Information"
	case CategoryMechanicalComp:
		return "Mechanical Comprehension"
	default:
		return string(c)
	}
}

// Tier represents a question difficulty tier.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// AllTiers returns the tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// TierString returns the wire name for a tier.
func TierString(t Tier) string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "easy"
	}
}

// TierFromString parses a wire tier name. Unknown names map to easy.
func TierFromString(s string) Tier {
	switch s {
	case "medium":
		return TierMedium
	case "hard":
		return TierHard
	default:
		return TierEasy
	}
}

// TierPoints returns the point value awarded for a correct answer at a tier.
func TierPoints(t Tier) int {
	switch t {
	case TierMedium:
		return 2
	case TierHard:
		return 4
	default:
		return 1
	}
}

// Question is a single scorable multiple-choice question.
// Questions are immutable once loaded into a Bank.
type Question struct {
	// ID uniquely identifies the question within the bank.
	ID string

	// Category is the subtest this question belongs to.
	Category Category

	// Tier is the difficulty tier controlling point value and selection pool.
	Tier Tier

	// Prompt is the question text shown to the user.
	Prompt string

	// Options contains the answer choices, in display order.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Points is the score awarded for a correct answer.
	// Conventionally TierPoints(Tier); kept explicit so imported banks
	// can override per question.
	Points int
}
