// Package table provides the typed tabular model shared by all parsers.
//
// A Table is an ordered set of named columns over rows of cells. Cells start
// life as raw strings scraped from HTML (blank cells become an explicit
// missing sentinel) and are upgraded in place by best-effort, column-wise
// coercion: a column converts to numbers only if every non-missing cell in it
// parses cleanly, otherwise it is left as text. Tables support the merge and
// concatenation operations the aggregators need, including a column-union
// merge that gives the receiving table priority on name collisions.
package table
