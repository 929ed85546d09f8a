package cli

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/passing-stats/internal/season"
	"github.com/pfrederiksen/passing-stats/internal/storage"
	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear cached season pages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List cached seasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(flagCacheDir)
			if err != nil {
				return err
			}
			entries, err := store.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No cached seasons.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%d  %8d bytes  %s\n", e.Year, e.Size, e.Path)
			}
			return nil
		},
	})

	var all bool
	clearCmd := &cobra.Command{
		Use:   "clear [year]",
		Short: "Remove a cached season, or every season with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New("give a year or --all")
			}
			store, err := storage.New(flagCacheDir)
			if err != nil {
				return err
			}

			years := []int{}
			if all {
				entries, err := store.List()
				if err != nil {
					return err
				}
				for _, e := range entries {
					years = append(years, e.Year)
				}
			} else {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Newf("invalid year %q", args[0])
				}
				if err := season.Validate(year); err != nil {
					return err
				}
				years = append(years, year)
			}

			for _, y := range years {
				if err := store.Clear(y); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached season(s).\n", len(years))
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&all, "all", false, "Clear every cached season")
	cmd.AddCommand(clearCmd)

	return cmd
}
