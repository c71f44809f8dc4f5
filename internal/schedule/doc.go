// Package schedule aggregates a season's monthly schedule pages into one
// season calendar.
//
// The site publishes schedules one month per page. Months absent for a
// season (shortened or lockout years) are the one expected missing-page
// condition in the whole scraper and are skipped silently; every other
// fetch failure propagates. "Playoffs" divider rows that interrupt the
// April tables are markup, not games, and are discarded. Seasons are named
// by the calendar year they conclude in.
package schedule
