package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/store"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summary statistics over all recorded activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if birth, ok := cfg.Birth(); ok {
				now := time.Now()
				name := cfg.BabyName
				if name == "" {
					name = "Baby"
				}
				fmt.Printf("%s: %d days old (%.1f months)\n\n",
					name, config.AgeDays(birth, now), config.AgeMonths(birth, now))
			}

			total, err := db.Count()
			if err != nil {
				return err
			}
			fmt.Printf("Total activities: %d\n", total)
			if total == 0 {
				return nil
			}

			first, last, ok, err := db.DateRange()
			if err != nil {
				return err
			}
			if ok {
				fmt.Printf("Date range: %s to %s\n",
					first.Format("2006-01-02"), last.Format("2006-01-02"))
			}

			byCategory, err := db.CountBy("category")
			if err != nil {
				return err
			}
			fmt.Println("\nBy category:")
			printCounts(byCategory)

			byType, err := db.CountBy("activity_type")
			if err != nil {
				return err
			}
			fmt.Println("\nBy type:")
			printCounts(byType)

			// daily averages over the tracked range
			days := int(last.Sub(first).Hours()/24) + 1
			if days < 1 {
				days = 1
			}
			fmt.Println("\nDaily averages:")
			fmt.Printf("  feedings:       %.1f\n", avgPerDay(byCategory[string(activity.CategoryFeeding)], days))
			fmt.Printf("  diaper changes: %.1f\n", avgPerDay(byCategory[string(activity.CategoryDiaper)], days))
			fmt.Printf("  sleep sessions: %.1f\n", avgPerDay(byCategory[string(activity.CategorySleep)], days))

			return nil
		},
	}
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-24s %d\n", k, counts[k])
	}
}

func avgPerDay(count, days int) float64 {
	return float64(count) / float64(days)
}
