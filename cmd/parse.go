package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jdbryant/mospath/internal/llm"
	"github.com/jdbryant/mospath/internal/resumeparse"
	"github.com/jdbryant/mospath/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.txt>",
	Short: "Extract a candidate profile from a resume with an LLM",
	Long: `Read a plain-text resume and extract a structured candidate profile:
skills, total experience, education, MOS codes, and work preferences.

Requires an LLM provider. Set one of MOSPATH_ANTHROPIC_API_KEY,
MOSPATH_OPENAI_API_KEY, or MOSPATH_GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringSlice("hint", nil, "Extraction hint, e.g. --hint logistics (repeatable)")
	parseCmd.Flags().Bool("save", false, "Save the extracted profile as the default stored profile")
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	llmCfg, ok := llm.DiscoverConfig()
	if !ok {
		return fmt.Errorf("no LLM provider configured; set MOSPATH_ANTHROPIC_API_KEY, MOSPATH_OPENAI_API_KEY, or MOSPATH_GEMINI_API_KEY")
	}
	provider, err := llm.NewProvider(ctx, llmCfg, logger)
	if err != nil {
		return fmt.Errorf("build LLM provider: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	hints, _ := cmd.Flags().GetStringSlice("hint")
	parser := resumeparse.New(provider, resumeparse.DefaultConfig())
	started := time.Now()
	parsed, err := parser.Parse(ctx, string(raw), hints)
	if err != nil {
		return fmt.Errorf("parse resume: %w", err)
	}

	recordUsage(st, llmCfg.Provider, parsed, time.Since(started))

	out, err := json.MarshalIndent(parsed.Profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if len(parsed.MOSCodes) > 0 {
		fmt.Printf("\nMOS codes: %s\n", strings.Join(parsed.MOSCodes, ", "))
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := st.ProfileRepo().Save(context.Background(), store.DefaultProfileName, &parsed.Profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Println("\nSaved as default profile.")
	}
	return nil
}

// recordUsage logs token spend for the attempt. Accounting failures are
// logged and otherwise ignored; they must not fail the parse.
func recordUsage(st *store.Store, provider string, parsed *resumeparse.Parsed, took time.Duration) {
	ctx := context.Background()
	repo := st.UsageRepo()

	err := repo.Record(ctx, &store.LLMUsage{
		Provider:     provider,
		Model:        parsed.Model,
		InputTokens:  parsed.Usage.InputTokens,
		OutputTokens: parsed.Usage.OutputTokens,
		Duration:     took,
	})
	if err != nil {
		logger.Warn("failed to record LLM usage", zap.Error(err))
		return
	}

	if totals, err := repo.Totals(ctx); err == nil {
		logger.Info("llm usage",
			zap.Int("input_tokens", parsed.Usage.InputTokens),
			zap.Int("output_tokens", parsed.Usage.OutputTokens),
			zap.Int("lifetime_requests", totals.Requests),
			zap.Int("lifetime_input_tokens", totals.InputTokens),
			zap.Int("lifetime_output_tokens", totals.OutputTokens))
	}
}
