// Package cli implements the command-line interface for basketballref.
//
// The cli package provides the Cobra-based CLI with one subcommand per
// scraper component (players, gamelog, roster, schedule, boxscore), output
// formatting (text/JSON/CSV), and optional saving of results to a file. It
// is a thin caller over the internal parser packages; all normalization
// happens there.
package cli
