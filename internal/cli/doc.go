// Package cli implements the command-line interface for passing-stats.
//
// The cli package provides the Cobra-based CLI: the root command fetches a
// season and renders its top passers (text, JSON or CSV), re-sorting by any
// column the way clicking a table header would. The schema and cache
// sub-commands show the per-era column layouts and manage cached pages.
package cli
