// Package player retrieves the player directory and per-player game logs.
//
// The directory is paged by first letter of surname; each letter page yields
// one row per player with the stable URI token used in every player URL.
// Game logs come from per-season pages, one per statistic category (basic
// and advanced), which are concatenated across seasons and merged by column
// union with the basic table taking priority on name collisions.
package player
