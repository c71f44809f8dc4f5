// Package roster scrapes a team's active roster for one season.
//
// A roster page yields a free-text team description, taken between two fixed
// textual landmarks on the page, and a table of jersey number, player name,
// and player URI per active player. Source pages occasionally repeat roster
// rows, so identical rows are collapsed.
package roster
