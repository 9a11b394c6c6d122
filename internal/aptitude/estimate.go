package aptitude

import "math"

// Scale defines the numeric range an aptitude estimate maps into.
// The estimate is an affine transform of the earned/possible ratio:
// round(Base + ratio*Span), so scores always land in [Base, Base+Span].
type Scale struct {
	Base int
	Span int
}

// GTScale is the scale used for the quick General Technical estimate
// shown after the mini quiz.
var GTScale = Scale{Base: 80, Span: 50}

// DrillScale is the scale the practice drill historically reported on.
// The two flows used different scales for the same computation; both are
// kept as explicit, named configurations.
var DrillScale = Scale{Base: 31, Span: 68}

// Estimate converts accumulated points into a bounded aptitude score.
// The denominator is floored at 1 so an unanswered quiz estimates at the
// scale floor rather than dividing by zero.
func Estimate(earnedPoints, possiblePoints int, scale Scale) int {
	denom := possiblePoints
	if denom < 1 {
		denom = 1
	}
	ratio := float64(earnedPoints) / float64(denom)
	return int(math.Round(float64(scale.Base) + ratio*float64(scale.Span)))
}

// Band is a qualitative percentile band for an estimate.
type Band struct {
	Label string
	Min   int
	Max   int
}

// bandThresholds pairs minimum ratios with display bands, in descending
// threshold order. The first threshold the ratio meets wins.
var bandThresholds = []struct {
	ratio float64
	band  Band
}{
	{0.85, Band{Label: "Outstanding", Min: 93, Max: 99}},
	{0.70, Band{Label: "Excellent", Min: 80, Max: 92}},
	{0.50, Band{Label: "Above Average", Min: 50, Max: 79}},
	{0.30, Band{Label: "Average", Min: 30, Max: 49}},
	{0, Band{Label: "Developing", Min: 1, Max: 29}},
}

// BandFor maps an earned/possible ratio to its percentile band.
func BandFor(earnedPoints, possiblePoints int) Band {
	denom := possiblePoints
	if denom < 1 {
		denom = 1
	}
	ratio := float64(earnedPoints) / float64(denom)

	for _, bt := range bandThresholds {
		if ratio >= bt.ratio {
			return bt.band
		}
	}
	return bandThresholds[len(bandThresholds)-1].band
}
