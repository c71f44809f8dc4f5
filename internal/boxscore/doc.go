// Package boxscore parses a single game's box score page.
//
// A box score page carries exactly four data tables in a fixed positional
// convention: away basic, away advanced, home basic, home advanced. Each
// side's pair is merged by column union (the advanced table's duplicate
// minutes column is dropped first), players flagged as not having played
// are excluded, and minutes convert from the page's "m:ss" text to
// fractional minutes. The teams and game date come from the page heading.
package boxscore
