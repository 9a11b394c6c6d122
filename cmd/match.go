package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/jdbryant/mospath/internal/jobsearch"
	"github.com/jdbryant/mospath/internal/profile"
	"github.com/jdbryant/mospath/internal/store"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank open positions against a candidate profile",
	Long: `Score every position from the configured source against a candidate
profile and print the ranked results. The profile comes from --profile
(a JSON file) or from the stored default profile.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().String("profile", "", "Path to a candidate profile JSON file (default: stored profile)")
	matchCmd.Flags().String("text", "", "Filter positions by title or employer")
	matchCmd.Flags().String("mos", "", "Filter positions by MOS code")
	matchCmd.Flags().String("location", "", "Filter positions by location")
	matchCmd.Flags().Int("top", 10, "Show only the top N matches (0 for all)")
	matchCmd.Flags().Bool("json", false, "Emit full results as JSON")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	candidate, err := loadCandidate(cmd)
	if err != nil {
		return err
	}

	params, err := searchParams(cmd)
	if err != nil {
		return err
	}
	positions, err := newSource().Search(ctx, params)
	if err != nil {
		return fmt.Errorf("search positions: %w", err)
	}

	matcher, err := newMatcher()
	if err != nil {
		return err
	}
	scores := matcher.MatchMany(candidate, positions)

	if top, _ := cmd.Flags().GetInt("top"); top > 0 && len(scores) > top {
		scores = scores[:top]
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	}

	if len(scores) == 0 {
		fmt.Println("No positions found.")
		return nil
	}

	fmt.Printf("%-5s  %-40s  %-24s  %-9s  %s\n",
		"Score", "Position", "Employer", "Band", "Missing skills")
	fmt.Println(strings.Repeat("─", 100))

	for _, s := range scores {
		fmt.Printf("%5.0f  %-40s  %-24s  %-9s  %s\n",
			s.Overall,
			truncate(s.Position.Title, 40),
			truncate(s.Position.Employer, 24),
			s.Band,
			truncate(strings.Join(s.MissingSkills, ", "), 40))
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
// Position titles come from external sources and may hold multibyte
// characters, so slicing bytes would corrupt them.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// loadCandidate reads the profile from --profile or from the store.
func loadCandidate(cmd *cobra.Command) (*profile.CandidateProfile, error) {
	if path, _ := cmd.Flags().GetString("profile"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		var p profile.CandidateProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", path, err)
		}
		if err := profile.Validate(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	p, err := st.ProfileRepo().Load(context.Background(), store.DefaultProfileName)
	if err != nil {
		return nil, fmt.Errorf("load stored profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("no stored profile; run the app to create one or pass --profile")
	}
	return p, nil
}

// searchParams merges configured search defaults with command flags.
func searchParams(cmd *cobra.Command) (jobsearch.Params, error) {
	var params jobsearch.Params
	if config.IsSet("search") {
		if err := mapstructure.Decode(config.GetStringMap("search"), &params); err != nil {
			return params, fmt.Errorf("decode search config: %w", err)
		}
	}
	if v, _ := cmd.Flags().GetString("text"); v != "" {
		params.Text = v
	}
	if v, _ := cmd.Flags().GetString("mos"); v != "" {
		params.MOS = v
	}
	if v, _ := cmd.Flags().GetString("location"); v != "" {
		params.Location = v
	}
	return params, nil
}
