package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, DB, FTS5, and show stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  DB path:    %s\n", cfg.DBPath)
			if cfg.BabyName != "" {
				fmt.Printf("  Baby:       %s\n", cfg.BabyName)
			}
			if _, ok := cfg.Birth(); cfg.BirthDate != "" && !ok {
				fmt.Printf("  Birth date: %s (INVALID, want YYYY-MM-DD)\n", cfg.BirthDate)
			} else if cfg.BirthDate != "" {
				fmt.Printf("  Birth date: %s\n", cfg.BirthDate)
			}

			fmt.Println("\n=== Database ===")
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'babylog import' or 'babylog add' first)")
				return nil
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			total, err := db.Count()
			if err != nil {
				return fmt.Errorf("count activities: %w", err)
			}
			fmt.Printf("  Activities: %d\n", total)

			fmt.Println("\n=== FTS5 ===")
			var ftsCount int
			err = db.Raw().QueryRow("SELECT COUNT(*) FROM activities_fts").Scan(&ftsCount)
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
			} else {
				fmt.Printf("  FTS5 entries: %d\n", ftsCount)
				if ftsCount == total {
					fmt.Println("  Status: OK (synced)")
				} else {
					fmt.Printf("  Status: MISMATCH (activities=%d, fts=%d)\n", total, ftsCount)
				}
			}

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}
}
