package jobsearch

// Position describes one civilian job opening's requirements. Positions
// are read-only inputs: they come from the live search API, from the
// static MOS crosswalk catalog, or from test fixtures, and flow straight
// into the matcher.
type Position struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Employer is the hiring organization, when known.
	Employer string `json:"employer,omitempty"`

	// RequiredSkills must be covered for a full skills score; missing
	// ones are reported back to the candidate.
	RequiredSkills []string `json:"required_skills,omitempty"`

	// PreferredSkills are nice-to-have and excluded from the skills
	// denominator.
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	// MinExperienceYears / MaxExperienceYears bound the experience
	// window. Nil means unbounded on that side.
	MinExperienceYears *float64 `json:"min_experience_years,omitempty"`
	MaxExperienceYears *float64 `json:"max_experience_years,omitempty"`

	// RequiredEducation lists acceptable education levels as free text
	// ("Bachelor's degree preferred"); the education scorer reduces these
	// to ordinal levels.
	RequiredEducation []string `json:"required_education,omitempty"`

	// CompositeRequirements maps composite (line score) names to minimum
	// scores, e.g. {"GT": 110}.
	CompositeRequirements map[string]float64 `json:"composite_requirements,omitempty"`

	// WorkMode is "onsite", "remote", or "hybrid". Empty means unstated.
	WorkMode string `json:"work_mode,omitempty"`

	// Location is a free-text location ("Fort Worth, TX").
	Location string `json:"location,omitempty"`

	// MOSCodes lists the military occupational specialties this position
	// is cross-walked from, when sourced from the static catalog.
	MOSCodes []string `json:"mos_codes,omitempty"`
}
