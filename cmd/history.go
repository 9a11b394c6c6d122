package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdbryant/mospath/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		results, err := st.ResultRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No quiz results found.")
			return nil
		}

		fmt.Printf("%-19s  %-4s  %-13s  %-7s  %-7s  %s\n",
			"Taken", "GT", "Band", "Correct", "Points", "Duration")
		fmt.Println(strings.Repeat("─", 70))

		for _, r := range results {
			fmt.Printf("%-19s  %-4d  %-13s  %3d/%-3d  %3d/%-3d  %s\n",
				r.TakenAt.Local().Format("2006-01-02 15:04"),
				r.Estimate, r.Band,
				r.Correct, r.Answered,
				r.EarnedPoints, r.PossiblePoints,
				r.Duration.Round(1e9))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show")
}
