package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", errors.Newf("invalid format: %s (must be 'text', 'json' or 'csv')", s)
}

// OutputResult is the JSON shape of a rendered table.
type OutputResult struct {
	Season     int        `json:"season"`
	Schema     string     `json:"schema"`
	SortedBy   string     `json:"sorted_by,omitempty"`
	Descending bool       `json:"descending,omitempty"`
	Columns    []string   `json:"columns"`
	Rows       [][]string `json:"rows"`
	Count      int        `json:"count"`
}

// WriteOutput writes the table in the specified format
func WriteOutput(w io.Writer, table *Table, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, table)
	case FormatCSV:
		return writeCSV(w, table)
	case FormatText:
		return writeText(w, table)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, table *Table) error {
	col, desc := table.SortedBy()
	result := &OutputResult{
		Season:     table.Season,
		Schema:     table.Schema,
		SortedBy:   col,
		Descending: desc,
		Columns:    table.Headers,
		Rows:       table.Rows,
		Count:      len(table.Rows),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeCSV(w io.Writer, table *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// writeText outputs an aligned, human-readable table
func writeText(w io.Writer, table *Table) error {
	fmt.Fprintf(w, "NFL Passing Stats %d (top %d by yards, schema %s)\n\n", table.Season, len(table.Rows), table.Schema)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(table.Headers, "\t")+"\t")
	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if col, desc := table.SortedBy(); col != "" {
		dir := "ascending"
		if desc {
			dir = "descending"
		}
		fmt.Fprintf(w, "\nSorted by %s (%s)\n", col, dir)
	}
	return nil
}
