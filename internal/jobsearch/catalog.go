package jobsearch

import "context"

// Catalog is the static MOS-crosswalk position source. It backs the app
// when no live search API is configured and doubles as the mock
// substitute in tests.
type Catalog struct {
	positions []Position
}

// NewCatalog wraps a fixed position list.
func NewCatalog(positions []Position) *Catalog {
	return &Catalog{positions: positions}
}

// SeedCatalog returns the built-in crosswalk catalog.
func SeedCatalog() *Catalog {
	return NewCatalog(seedPositions)
}

// Search filters the catalog in memory.
func (c *Catalog) Search(_ context.Context, params Params) ([]Position, error) {
	var out []Position
	for _, p := range c.positions {
		if !matchesParams(p, params) {
			continue
		}
		out = append(out, p)
		if params.Limit > 0 && len(out) >= params.Limit {
			break
		}
	}
	return out, nil
}

func float(v float64) *float64 { return &v }

// seedPositions is a reduced crosswalk table; the full app ships hundreds
// of entries from the reference data set.
var seedPositions = []Position{
	{
		ID: "pos-logistics-coord", Title: "Logistics Coordinator", Employer: "TransFreight National",
		RequiredSkills:        []string{"supply chain", "inventory management", "scheduling"},
		PreferredSkills:       []string{"sap", "forklift"},
		MinExperienceYears:    float(2),
		RequiredEducation:     []string{"High school diploma or GED"},
		CompositeRequirements: map[string]float64{"CO": 90},
		WorkMode:              "onsite",
		Location:              "Dallas, TX",
		MOSCodes:              []string{"92A", "88N"},
	},
	{
		ID: "pos-field-tech", Title: "Field Service Technician", Employer: "Meridian Power Systems",
		RequiredSkills:        []string{"electrical troubleshooting", "preventive maintenance", "schematics"},
		MinExperienceYears:    float(1),
		MaxExperienceYears:    float(8),
		RequiredEducation:     []string{"Associate degree in electronics preferred"},
		CompositeRequirements: map[string]float64{"EL": 93},
		WorkMode:              "onsite",
		Location:              "Houston, TX",
		MOSCodes:              []string{"91D", "12P"},
	},
	{
		ID: "pos-net-admin", Title: "Network Administrator", Employer: "Clearline Communications",
		RequiredSkills:        []string{"networking", "cisco", "linux", "troubleshooting"},
		PreferredSkills:       []string{"aws", "security clearance"},
		MinExperienceYears:    float(3),
		RequiredEducation:     []string{"Bachelor's degree in IT or equivalent experience"},
		CompositeRequirements: map[string]float64{"ST": 95, "EL": 90},
		WorkMode:              "hybrid",
		Location:              "San Antonio, TX",
		MOSCodes:              []string{"25B", "17C"},
	},
	{
		ID: "pos-ops-manager", Title: "Operations Manager", Employer: "Harbor Ridge Logistics",
		RequiredSkills:        []string{"leadership", "operations planning", "budgeting", "personnel management"},
		MinExperienceYears:    float(5),
		RequiredEducation:     []string{"Bachelor's degree"},
		CompositeRequirements: map[string]float64{"GT": 100},
		WorkMode:              "onsite",
		Location:              "Norfolk, VA",
		MOSCodes:              []string{"11B", "92Y"},
	},
	{
		ID: "pos-diesel-mech", Title: "Diesel Mechanic", Employer: "Ironhide Fleet Services",
		RequiredSkills:     []string{"diesel engines", "hydraulics", "preventive maintenance"},
		RequiredEducation:  []string{"High school diploma or GED"},
		MinExperienceYears: float(1),
		CompositeRequirements: map[string]float64{
			"GM": 88,
		},
		WorkMode: "onsite",
		Location: "Fayetteville, NC",
		MOSCodes: []string{"91B", "91L"},
	},
	{
		ID: "pos-intel-analyst", Title: "Intelligence Analyst", Employer: "Sentinel Research Group",
		RequiredSkills:        []string{"analysis", "report writing", "briefing", "osint"},
		PreferredSkills:       []string{"security clearance"},
		MinExperienceYears:    float(2),
		RequiredEducation:     []string{"Bachelor's degree required, Master's preferred"},
		CompositeRequirements: map[string]float64{"GT": 110},
		WorkMode:              "remote",
		Location:              "Washington, DC",
		MOSCodes:              []string{"35F"},
	},
}
