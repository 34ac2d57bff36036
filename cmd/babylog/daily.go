package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/daily"
	"github.com/rpillai/babylog/internal/store"
)

func dailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Age-appropriate activity suggestions with today's progress",
		Long: `Suggests development activities for the baby's current age bracket and
counts today's recorded activities against each suggestion's daily target.
Needs birth_date in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			birth, ok := cfg.Birth()
			if !ok {
				return fmt.Errorf("set birth_date in the config to get daily suggestions")
			}

			name := cfg.BabyName
			if name == "" {
				name = "Baby"
			}

			now := time.Now()
			months := int(config.AgeMonths(birth, now))
			templates := daily.ForAge(months)
			if len(templates) == 0 {
				fmt.Println("No suggestions for this age yet.")
				return nil
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			records, err := db.List(store.Query{Since: midnight})
			if err != nil {
				return err
			}

			fmt.Printf("Daily activities for %s (%d months)\n\n", name, months)
			for _, t := range templates {
				n := daily.Progress(t, records)
				fmt.Printf("%s [%s]  %d/%d done, ~%d min each\n",
					t.Title, t.Category, n, t.TargetCount, t.Minutes)
				fmt.Printf("  %s\n", t.Description)
				if n >= t.TargetCount {
					fmt.Printf("  %s\n", daily.Completion(t, name))
				} else {
					fmt.Printf("  %s\n", daily.Motivational(t, n, name))
				}
				fmt.Printf("  %s\n\n", t.Benefits)
			}
			return nil
		},
	}

	return cmd
}
