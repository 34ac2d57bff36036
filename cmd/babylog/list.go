package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/render"
	"github.com/rpillai/babylog/internal/store"
	"github.com/rpillai/babylog/internal/tui"
)

func listCmd() *cobra.Command {
	var category, since string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse recorded activities",
		Long: `Shows recorded activities newest first. Opens an interactive browser
when stdout is a terminal; prints tab-separated rows when piped.`,
		Args: cobra.NoArgs,
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

			q := store.Query{Limit: limit}
			if category != "" {
				q.Category = activity.ParseCategory(category)
			}
			if since != "" {
				t, err := time.ParseInLocation("2006-01-02", since, time.Local)
				if err != nil {
					return fmt.Errorf("bad --since date %q (want YYYY-MM-DD)", since)
				}
				q.Since = t
			}

			records, err := db.List(q)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintln(os.Stderr, "No activities recorded.")
				return nil
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(records)
			}

			for _, r := range records {
				fmt.Println(render.Row(r))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (feeding/diaper/sleep/...)")
	cmd.Flags().StringVar(&since, "since", "", "Only activities on or after date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 200, "Max results (0 = no limit)")

	return cmd
}
