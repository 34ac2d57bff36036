package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/insights"
	"github.com/rpillai/babylog/internal/render"
	"github.com/rpillai/babylog/internal/store"
)

func insightsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Rule-based trend findings over recorded activities",
		Long: `Computes week-over-week trends, schedule consistency, and day/night
distribution for feeding and sleep activities, and renders them as short
findings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch category {
			case "", "feeding", "sleep":
			default:
				return fmt.Errorf("unsupported insights category %q (want feeding or sleep)", category)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.List(store.Query{})
			if err != nil {
				return err
			}

			today := time.Now()

			if category == "" || category == "feeding" {
				fmt.Println("Feeding")
				fmt.Print(render.Findings(insights.Feeding(records, today)))
			}
			if category == "" || category == "sleep" {
				fmt.Println("Sleep")
				fmt.Print(render.Findings(insights.Sleep(records, today)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit to one category (feeding/sleep)")

	return cmd
}
