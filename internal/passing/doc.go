// Package passing turns extracted table rows into the ranked, scored result
// set shown to the user.
//
// Build runs the whole pipeline for one season: rows are mapped onto the
// season's schema band, low-volume passers are dropped, players traded
// mid-season are collapsed onto their combined line, the top passers by
// yardage are kept and each of them gets yardage, touchdown, metric and total
// z-scores computed against that displayed set.
package passing
