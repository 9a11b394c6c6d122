package aptitude

import (
	"testing"

	"github.com/jdbryant/mospath/internal/questionbank"
)

func TestEstimate_KnownValues(t *testing.T) {
	cases := []struct {
		earned, possible int
		scale            Scale
		want             int
	}{
		{7, 10, Scale{Base: 80, Span: 50}, 115},
		{0, 10, Scale{Base: 80, Span: 50}, 80},
		{10, 10, Scale{Base: 80, Span: 50}, 130},
		{5, 10, Scale{Base: 31, Span: 68}, 65},
	}
	for _, c := range cases {
		got := Estimate(c.earned, c.possible, c.scale)
		if got != c.want {
			t.Errorf("Estimate(%d, %d, %+v) = %d, want %d", c.earned, c.possible, c.scale, got, c.want)
		}
	}
}

func TestEstimate_ZeroPossibleGuard(t *testing.T) {
	got := Estimate(0, 0, GTScale)
	if got != GTScale.Base {
		t.Errorf("Estimate with no answers = %d, want scale base %d", got, GTScale.Base)
	}
}

func TestEstimate_AlwaysInScaleRange(t *testing.T) {
	for earned := 0; earned <= 20; earned++ {
		got := Estimate(earned, 20, GTScale)
		if got < GTScale.Base || got > GTScale.Base+GTScale.Span {
			t.Errorf("Estimate(%d, 20) = %d, outside [%d, %d]",
				earned, got, GTScale.Base, GTScale.Base+GTScale.Span)
		}
	}
}

func TestBandFor_DescendingThresholds(t *testing.T) {
	cases := []struct {
		earned, possible int
		wantLabel        string
	}{
		{90, 100, "Outstanding"},
		{85, 100, "Outstanding"},
		{75, 100, "Excellent"},
		{70, 100, "Excellent"},
		{60, 100, "Above Average"},
		{35, 100, "Average"},
		{10, 100, "Developing"},
		{0, 0, "Developing"},
	}
	for _, c := range cases {
		got := BandFor(c.earned, c.possible)
		if got.Label != c.wantLabel {
			t.Errorf("BandFor(%d, %d) = %q, want %q", c.earned, c.possible, got.Label, c.wantLabel)
		}
		if got.Min > got.Max {
			t.Errorf("band %q has inverted range %d-%d", got.Label, got.Min, got.Max)
		}
	}
}

func TestCompositeScore_MeanOfMembers(t *testing.T) {
	def, ok := LookupComposite("GT")
	if !ok {
		t.Fatal("GT composite missing")
	}
	scores := map[questionbank.Category]float64{
		questionbank.CategoryArithmeticReasoning: 90,
		questionbank.CategoryWordKnowledge:       60,
		questionbank.CategoryParagraphComp:       75,
	}
	got := CompositeScore(scores, def)
	if got != 75 {
		t.Errorf("GT composite = %v, want 75", got)
	}
}

func TestCompositeScore_MissingCategoryCountsZero(t *testing.T) {
	def, _ := LookupComposite("GT")
	scores := map[questionbank.Category]float64{
		questionbank.CategoryArithmeticReasoning: 90,
		// WK and PC absent.
	}
	got := CompositeScore(scores, def)
	if got != 30 {
		t.Errorf("GT composite with missing members = %v, want 30", got)
	}
}

func TestMeetsRequirement_CompositeAndFallback(t *testing.T) {
	scores := map[questionbank.Category]float64{
		questionbank.CategoryArithmeticReasoning: 100,
		questionbank.CategoryWordKnowledge:       100,
		questionbank.CategoryParagraphComp:       100,
		questionbank.CategoryMechanicalComp:      55,
	}

	if !MeetsRequirement(scores, "GT", 100) {
		t.Error("GT=100 should meet a 100 minimum")
	}
	if MeetsRequirement(scores, "GT", 101) {
		t.Error("GT=100 should not meet a 101 minimum")
	}

	// Unknown composite names degrade to a literal category lookup.
	if !MeetsRequirement(scores, "MC", 50) {
		t.Error("literal MC lookup should meet 50")
	}
	if MeetsRequirement(scores, "MC", 60) {
		t.Error("literal MC lookup should not meet 60")
	}
	if MeetsRequirement(scores, "XX", 1) {
		t.Error("unknown name with no category score should fail")
	}
}
