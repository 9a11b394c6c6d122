package questionbank

import "fmt"

// Seed returns the built-in question bank. The web app ships a much larger
// reference bank; this catalog keeps three questions per tier in each core
// category so the adaptive selector always has adjacent-tier fallbacks.
func Seed() *Bank {
	b, err := New(seedQuestions)
	if err != nil {
		// The seed is compiled into the binary; a construction failure is a bug.
		panic(fmt.Sprintf("questionbank: invalid seed: %v", err))
	}
	return b
}

var seedQuestions = []Question{
	// Arithmetic Reasoning
	{ID: "ar-e1", Category: CategoryArithmeticReasoning, Tier: TierEasy,
		Prompt:  "A soldier runs 2 miles in the morning and 3 miles in the evening. How many miles total?",
		Options: []string{"4", "5", "6", "7"}, CorrectIndex: 1},
	{ID: "ar-e2", Category: CategoryArithmeticReasoning, Tier: TierEasy,
		Prompt:  "If MREs come 12 to a case, how many MREs are in 3 cases?",
		Options: []string{"24", "30", "36", "48"}, CorrectIndex: 2},
	{ID: "ar-m1", Category: CategoryArithmeticReasoning, Tier: TierMedium,
		Prompt:  "A convoy travels 180 miles in 4 hours. What is its average speed?",
		Options: []string{"40 mph", "45 mph", "50 mph", "60 mph"}, CorrectIndex: 1},
	{ID: "ar-m2", Category: CategoryArithmeticReasoning, Tier: TierMedium,
		Prompt:  "A unit of 120 members has 25% on leave. How many are present?",
		Options: []string{"80", "85", "90", "95"}, CorrectIndex: 2},
	{ID: "ar-h1", Category: CategoryArithmeticReasoning, Tier: TierHard,
		Prompt:  "Fuel is consumed at 8 gal/hr for 3.5 hours, then 6 gal/hr for 2 hours. Total gallons used?",
		Options: []string{"38", "40", "42", "44"}, CorrectIndex: 1},
	{ID: "ar-h2", Category: CategoryArithmeticReasoning, Tier: TierHard,
		Prompt:  "A generator's output drops 15% from 200 kW, then rises 10% from that level. Final output?",
		Options: []string{"181 kW", "187 kW", "190 kW", "195 kW"}, CorrectIndex: 1},

	// Word Knowledge
	{ID: "wk-e1", Category: CategoryWordKnowledge, Tier: TierEasy,
		Prompt:  "\"Rapid\" most nearly means:",
		Options: []string{"slow", "quick", "loud", "careful"}, CorrectIndex: 1},
	{ID: "wk-e2", Category: CategoryWordKnowledge, Tier: TierEasy,
		Prompt:  "\"Assist\" most nearly means:",
		Options: []string{"help", "resist", "demand", "ignore"}, CorrectIndex: 0},
	{ID: "wk-m1", Category: CategoryWordKnowledge, Tier: TierMedium,
		Prompt:  "\"Meticulous\" most nearly means:",
		Options: []string{"careless", "precise", "rushed", "stubborn"}, CorrectIndex: 1},
	{ID: "wk-m2", Category: CategoryWordKnowledge, Tier: TierMedium,
		Prompt:  "\"Candid\" most nearly means:",
		Options: []string{"secretive", "frank", "hostile", "cheerful"}, CorrectIndex: 1},
	{ID: "wk-h1", Category: CategoryWordKnowledge, Tier: TierHard,
		Prompt:  "\"Obfuscate\" most nearly means:",
		Options: []string{"clarify", "confuse", "shorten", "repeat"}, CorrectIndex: 1},
	{ID: "wk-h2", Category: CategoryWordKnowledge, Tier: TierHard,
		Prompt:  "\"Pernicious\" most nearly means:",
		Options: []string{"harmful", "persuasive", "permanent", "minor"}, CorrectIndex: 0},

	// Paragraph Comprehension
	{ID: "pc-e1", Category: CategoryParagraphComp, Tier: TierEasy,
		Prompt:  "\"The motor pool opens at 0600 and closes at 1800 daily.\" When does the motor pool close?",
		Options: []string{"0600", "1200", "1800", "2000"}, CorrectIndex: 2},
	{ID: "pc-m1", Category: CategoryParagraphComp, Tier: TierMedium,
		Prompt:  "\"Despite heavy rain, the exercise continued because visibility remained acceptable.\" Why did the exercise continue?",
		Options: []string{"The rain stopped", "Visibility was acceptable", "It was rescheduled", "Orders changed"}, CorrectIndex: 1},
	{ID: "pc-h1", Category: CategoryParagraphComp, Tier: TierHard,
		Prompt:  "\"The report credits logistics, not tactics, for the operation's success.\" The author believes success came mainly from:",
		Options: []string{"tactics", "logistics", "luck", "leadership"}, CorrectIndex: 1},

	// Mathematics Knowledge
	{ID: "mk-e1", Category: CategoryMathKnowledge, Tier: TierEasy,
		Prompt:  "What is 9 × 7?",
		Options: []string{"56", "63", "72", "81"}, CorrectIndex: 1},
	{ID: "mk-m1", Category: CategoryMathKnowledge, Tier: TierMedium,
		Prompt:  "Solve for x: 3x - 7 = 14",
		Options: []string{"5", "6", "7", "9"}, CorrectIndex: 2},
	{ID: "mk-h1", Category: CategoryMathKnowledge, Tier: TierHard,
		Prompt:  "What is the area of a triangle with base 12 and height 9?",
		Options: []string{"48", "54", "60", "108"}, CorrectIndex: 1},

	// General Science
	{ID: "gs-e1", Category: CategoryGeneralScience, Tier: TierEasy,
		Prompt:  "Water boils at what temperature at sea level?",
		Options: []string{"90°C", "100°C", "110°C", "120°C"}, CorrectIndex: 1},
	{ID: "gs-m1", Category: CategoryGeneralScience, Tier: TierMedium,
		Prompt:  "Which blood cells primarily fight infection?",
		Options: []string{"Red cells", "White cells", "Platelets", "Plasma"}, CorrectIndex: 1},
	{ID: "gs-h1", Category: CategoryGeneralScience, Tier: TierHard,
		Prompt:  "Which gas law relates pressure and volume at constant temperature?",
		Options: []string{"Charles's law", "Boyle's law", "Dalton's law", "Henry's law"}, CorrectIndex: 1},

	// Electronics Information
	{ID: "ei-e1", Category: CategoryElectronicsInfo, Tier: TierEasy,
		Prompt:  "Electrical resistance is measured in:",
		Options: []string{"volts", "amps", "ohms", "watts"}, CorrectIndex: 2},
	{ID: "ei-m1", Category: CategoryElectronicsInfo, Tier: TierMedium,
		Prompt:  "Using Ohm's law, the current through a 10-ohm resistor at 20 volts is:",
		Options: []string{"0.5 A", "2 A", "10 A", "200 A"}, CorrectIndex: 1},
	{ID: "ei-h1", Category: CategoryElectronicsInfo, Tier: TierHard,
		Prompt:  "Two 100-ohm resistors in parallel have a combined resistance of:",
		Options: []string{"200 ohms", "100 ohms", "50 ohms", "25 ohms"}, CorrectIndex: 2},

	// Auto & Shop
	{ID: "as-e1", Category: CategoryAutoShop, Tier: TierEasy,
		Prompt:  "Which tool is used to tighten a hex nut?",
		Options: []string{"Hammer", "Wrench", "Chisel", "File"}, CorrectIndex: 1},
	{ID: "as-m1", Category: CategoryAutoShop, Tier: TierMedium,
		Prompt:  "In a four-stroke engine, the stroke after intake is:",
		Options: []string{"Exhaust", "Power", "Compression", "Ignition"}, CorrectIndex: 2},
	{ID: "as-h1", Category: CategoryAutoShop, Tier: TierHard,
		Prompt:  "A lean air-fuel mixture means:",
		Options: []string{"Too much fuel", "Too much air", "No spark", "Low compression"}, CorrectIndex: 1},

	// Mechanical Comprehension
	{ID: "mc-e1", Category: CategoryMechanicalComp, Tier: TierEasy,
		Prompt:  "Which simple machine is a ramp?",
		Options: []string{"Lever", "Pulley", "Inclined plane", "Wheel"}, CorrectIndex: 2},
	{ID: "mc-m1", Category: CategoryMechanicalComp, Tier: TierMedium,
		Prompt:  "A lever lifts more weight when the fulcrum is moved:",
		Options: []string{"Closer to the load", "Closer to the effort", "To the center", "Away from both"}, CorrectIndex: 0},
	{ID: "mc-h1", Category: CategoryMechanicalComp, Tier: TierHard,
		Prompt:  "A gear with 20 teeth drives a gear with 60 teeth. The driven gear turns:",
		Options: []string{"3x faster", "3x slower", "At the same speed", "9x slower"}, CorrectIndex: 1},
}
