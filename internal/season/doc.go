// Package season describes which seasons can be requested and how the
// pro-football-reference passing table is laid out for each of them.
//
// The site's column layout has changed twice since 1950. Each layout is a
// Band: a year range plus an ordered list of logical columns and the raw cell
// index each one is read from. The band table is plain data, so a new layout
// on the site is added here as another entry rather than as new code paths.
package season
