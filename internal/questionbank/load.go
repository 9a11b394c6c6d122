package questionbank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON schema an imported question bank payload must
// satisfy. Validation runs before decoding so a malformed payload fails
// with a schema error instead of a half-built bank.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": "string", "minLength": 1},
					"tier": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"correct_index": map[string]any{"type": "integer", "minimum": 0},
					"points":        map[string]any{"type": "integer", "minimum": 1},
				},
				"required":             []any{"id", "category", "tier", "prompt", "options", "correct_index"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

// questionPayload mirrors the bank file wire format.
type questionPayload struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Tier         string   `json:"tier"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Points       int      `json:"points"`
}

type bankPayload struct {
	Questions []questionPayload `json:"questions"`
}

// Parse validates and decodes a question bank payload.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid bank JSON: %w", err)
	}

	compiled, err := compileBankSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("bank payload rejected: %w", err)
	}

	var payload bankPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode bank payload: %w", err)
	}

	questions := make([]Question, 0, len(payload.Questions))
	for _, qp := range payload.Questions {
		questions = append(questions, Question{
			ID:           qp.ID,
			Category:     Category(qp.Category),
			Tier:         TierFromString(qp.Tier),
			Prompt:       qp.Prompt,
			Options:      qp.Options,
			CorrectIndex: qp.CorrectIndex,
			Points:       qp.Points,
		})
	}

	return New(questions)
}

// LoadFile reads and parses a question bank file.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(raw)
}

func compileBankSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-bank.json", defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://question-bank.json")
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return compiled, nil
}
