package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/store"
)

// exportedRecord is the JSON shape written by the export command.
type exportedRecord struct {
	ID              string   `json:"id"`
	Timestamp       string   `json:"timestamp"`
	Category        string   `json:"category"`
	ActivityType    string   `json:"activity_type"`
	Description     string   `json:"description"`
	Amount          *float64 `json:"amount,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Origin          string   `json:"origin"`
	Sender          string   `json:"sender,omitempty"`
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export all activities to a JSON file",
		Args:  cobra.ExactArgs(1),
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

			records, err := db.List(store.Query{})
			if err != nil {
				return err
			}

			out := make([]exportedRecord, 0, len(records))
			for _, r := range records {
				out = append(out, toExported(r))
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal activities: %w", err)
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Exported %d activities to %s\n", len(out), args[0])
			return nil
		},
	}
}

func toExported(r activity.Record) exportedRecord {
	return exportedRecord{
		ID:              r.ID,
		Timestamp:       r.Timestamp.Format("2006-01-02T15:04:05"),
		Category:        string(r.Category),
		ActivityType:    string(r.Type),
		Description:     r.Description,
		Amount:          r.Amount,
		Unit:            r.Unit,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Tags:            r.Tags,
		Origin:          r.Origin,
		Sender:          r.Sender,
	}
}
