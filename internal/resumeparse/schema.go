package resumeparse

import "github.com/jdbryant/mospath/internal/llm"

// ProfileSchema defines the JSON schema for LLM résumé extraction responses.
var ProfileSchema = &llm.Schema{
	Name:        "candidate-profile",
	Description: "Structured career data extracted from a resume",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Distinct skills the candidate demonstrates, lowercased, civilian phrasing (e.g. 'logistics', not '92A duties')",
			},
			"total_years_experience": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Total years of work experience including military service, summed across positions",
			},
			"education_records": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "One entry per degree or credential, verbatim from the resume (e.g. 'Bachelor of Science, Logistics Management')",
			},
			"mos_codes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Military occupational specialty codes mentioned in the resume (e.g. '92A', '25B'). Empty if none.",
			},
			"work_mode": map[string]any{
				"type":        "string",
				"enum":        []any{"remote", "onsite", "hybrid", ""},
				"description": "Stated work-mode preference, empty string if the resume does not say",
			},
			"location": map[string]any{
				"type":        "string",
				"description": "Stated location or desired location, empty string if the resume does not say",
			},
		},
		"required":             []any{"skills", "total_years_experience", "education_records", "mos_codes", "work_mode", "location"},
		"additionalProperties": false,
	},
}
