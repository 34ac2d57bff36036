package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/store"
)

func amendCmd() *cobra.Command {
	var (
		description string
		category    string
		actType     string
		amount      float64
		unit        string
		duration    int
		notes       string
		when        string
	)

	cmd := &cobra.Command{
		Use:   "amend <id>",
		Short: "Amend a stored activity",
		Long: `Overwrites fields of a stored activity. Amendments are terminal: the
text is not re-classified, so correcting a misclassification means setting
--category and --type explicitly.`,
		Args: cobra.ExactArgs(1),
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

			rec, err := db.Get(args[0])
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("activity not found: %s", args[0])
			}

			if cmd.Flags().Changed("description") {
				rec.Description = description
			}
			if cmd.Flags().Changed("category") {
				rec.Category = activity.ParseCategory(category)
			}
			if cmd.Flags().Changed("type") {
				rec.Type = activity.ParseType(actType)
				if !cmd.Flags().Changed("category") {
					rec.Category = activity.CategoryOf(rec.Type)
				}
			}
			if cmd.Flags().Changed("amount") {
				v := amount
				rec.Amount = &v
			}
			if cmd.Flags().Changed("unit") {
				rec.Unit = unit
			}
			if cmd.Flags().Changed("duration") {
				d := duration
				rec.DurationMinutes = &d
			}
			if cmd.Flags().Changed("notes") {
				rec.Notes = notes
			}
			if cmd.Flags().Changed("time") {
				t, err := time.ParseInLocation("2006-01-02 15:04", when, time.Local)
				if err != nil {
					return fmt.Errorf("bad --time %q (want YYYY-MM-DD HH:MM)", when)
				}
				rec.Timestamp = t
			}

			if err := db.Update(rec); err != nil {
				return err
			}
			fmt.Printf("Amended %s\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Replace the description text")
	cmd.Flags().StringVar(&category, "category", "", "Replace the category (feeding/diaper/sleep/...)")
	cmd.Flags().StringVar(&actType, "type", "", "Replace the activity type (bottle_feed/nap/...)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Replace the amount")
	cmd.Flags().StringVar(&unit, "unit", "", "Replace the unit")
	cmd.Flags().IntVar(&duration, "duration", 0, "Replace the duration in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "Replace the notes")
	cmd.Flags().StringVar(&when, "time", "", "Replace the event time (YYYY-MM-DD HH:MM)")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored activity",
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

			rec, err := db.Get(args[0])
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("activity not found: %s", args[0])
			}

			if err := db.Delete(rec.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s (%s/%s at %s)\n", rec.ID, rec.Category, rec.Type, rec.DisplayTime())
			return nil
		},
	}
}
