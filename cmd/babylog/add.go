package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/classify"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/store"
)

func addCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Record a manually-typed activity",
		Long: `Classifies a single line of text and stores the resulting activity.
Text that matches no activity keyword is still kept as an uncategorized
("other") record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if sender == "" {
				sender = cfg.Sender
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			rec := classify.ProcessManual(args[0], sender, time.Now())
			if rec == nil {
				return fmt.Errorf("nothing to record: empty text")
			}

			res, err := db.Add(rec)
			if err != nil {
				return fmt.Errorf("store activity: %w", err)
			}
			if res == store.Duplicate {
				fmt.Println("Already recorded (duplicate timestamp and text).")
				return nil
			}

			fmt.Printf("Recorded %s/%s at %s (%s)\n", rec.Category, rec.Type, rec.DisplayTime(), rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "Sender name (defaults to config sender)")

	return cmd
}
