package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/config"
	"github.com/rpillai/babylog/internal/render"
	"github.com/rpillai/babylog/internal/store"
)

func searchCmd() *cobra.Command {
	var category string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over activity descriptions",
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

			opts := store.SearchOptions{Query: args[0], Limit: limit}
			if category != "" {
				opts.Category = activity.ParseCategory(category)
			}

			results, err := db.Search(opts)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			for _, r := range results {
				fmt.Printf("%s\t%s\t%s/%s\t%s\t%s\n",
					r.ID, r.Ts, r.Category, r.Type, r.Sender,
					render.HighlightSnippet(r.Snippet))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max results")

	return cmd
}
