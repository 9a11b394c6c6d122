package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdbryant/mospath/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Summarize the loaded question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}

		perTier := make(map[questionbank.Category]map[questionbank.Tier]int)
		for _, q := range bank.All() {
			if perTier[q.Category] == nil {
				perTier[q.Category] = make(map[questionbank.Tier]int)
			}
			perTier[q.Category][q.Tier]++
		}

		fmt.Printf("%d questions\n\n", bank.Len())
		fmt.Printf("%-4s  %-26s  %-5s  %-7s  %-5s\n", "", "Category", "Easy", "Medium", "Hard")
		fmt.Println(strings.Repeat("─", 55))

		for _, cat := range questionbank.AllCategories() {
			counts, ok := perTier[cat]
			if !ok {
				continue
			}
			fmt.Printf("%-4s  %-26s  %-5d  %-7d  %-5d\n",
				string(cat), questionbank.CategoryDisplayName(cat),
				counts[questionbank.TierEasy],
				counts[questionbank.TierMedium],
				counts[questionbank.TierHard])
		}
		return nil
	},
}
