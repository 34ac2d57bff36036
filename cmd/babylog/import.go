package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/classify"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/store"
)

// Stats summarizes one import run.
type Stats struct {
	Messages   int
	Imported   int
	Duplicates int
	Skipped    int
}

func (s Stats) String() string {
	return fmt.Sprintf("messages=%d imported=%d duplicates=%d skipped=%d",
		s.Messages, s.Imported, s.Duplicates, s.Skipped)
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <export-file>",
		Short: "Import a chat export file and classify its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			document, err := classify.ReadDocument(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Importing %s...\n", args[0])

			records, messages := classify.ProcessDocument(document, time.Now())
			stats := Stats{Messages: messages, Skipped: messages - len(records)}

			for _, rec := range records {
				res, err := db.Add(rec)
				if err != nil {
					return fmt.Errorf("store activity: %w", err)
				}
				if res == store.Duplicate {
					stats.Duplicates++
				} else {
					stats.Imported++
				}
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}
}
