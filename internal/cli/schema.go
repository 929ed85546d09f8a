package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/passing-stats/internal/season"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [year]",
		Short: "Show the passing table column layouts by era",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bands := season.Bands
			if len(args) == 1 {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Newf("invalid year %q", args[0])
				}
				b, err := season.ForYear(year)
				if err != nil {
					return err
				}
				bands = []season.Band{b}
			}
			writeBands(cmd.OutOrStdout(), bands)
			return nil
		},
	}
}

func writeBands(w io.Writer, bands []season.Band) {
	for i, b := range bands {
		if i > 0 {
			fmt.Fprintln(w)
		}
		to := strconv.Itoa(b.To)
		if b.To == 0 {
			to = strconv.Itoa(season.Max)
		}
		fmt.Fprintf(w, "%s (%d-%s), metric %s\n", b.Version, b.From, to, b.Metric)

		cols := make([]string, len(b.Columns))
		for j, c := range b.Columns {
			cols[j] = fmt.Sprintf("%s=%d", c.Name, c.Index)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cols, " "))
	}
}
