package resumeparse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jdbryant/mospath/internal/llm"
	"github.com/jdbryant/mospath/internal/profile"
)

// Config bounds a single extraction request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns extraction defaults. Temperature stays at zero;
// extraction should be reproducible for the same resume.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 2048,
	}
}

// Parsed is the result of one résumé extraction. MOS codes ride alongside
// the profile because the job-search layer filters on them while the
// matcher does not.
type Parsed struct {
	Profile  profile.CandidateProfile
	MOSCodes []string

	// Usage and Model describe the request that produced this extraction,
	// for cost accounting.
	Usage llm.Usage
	Model string
}

// Parser extracts a CandidateProfile from free-form résumé text via the
// LLM provider.
type Parser struct {
	provider llm.Provider
	config   Config
}

// New creates a Parser with the given provider and config.
func New(provider llm.Provider, cfg Config) *Parser {
	return &Parser{provider: provider, config: cfg}
}

// profileOutput is the raw LLM response before validation.
type profileOutput struct {
	Skills               []string `json:"skills"`
	TotalYearsExperience float64  `json:"total_years_experience"`
	EducationRecords     []string `json:"education_records"`
	MOSCodes             []string `json:"mos_codes"`
	WorkMode             string   `json:"work_mode"`
	Location             string   `json:"location"`
}

// Parse extracts a candidate profile from résumé text. Hints, when given,
// name target career fields the candidate cares about and steer skill
// phrasing toward them.
func (p *Parser) Parse(ctx context.Context, resumeText string, hints []string) (*Parsed, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(resumeText, hints)},
		},
		Schema:      ProfileSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}

	var raw profileOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	out := &Parsed{
		Profile: profile.CandidateProfile{
			Skills:               raw.Skills,
			TotalYearsExperience: raw.TotalYearsExperience,
			EducationRecords:     raw.EducationRecords,
		},
		MOSCodes: raw.MOSCodes,
		Usage:    resp.Usage,
		Model:    resp.Model,
	}
	if raw.WorkMode != "" || raw.Location != "" {
		out.Profile.Preferences = &profile.Preferences{
			WorkMode: raw.WorkMode,
			Location: raw.Location,
		}
	}

	if err := profile.Validate(&out.Profile); err != nil {
		return nil, fmt.Errorf("extracted profile invalid: %w", err)
	}

	return out, nil
}
