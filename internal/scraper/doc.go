// Package scraper provides HTTP fetching and the shared HTML table
// primitives for basketball-reference.com.
//
// The scraper package fetches pages from the public site and exposes the
// low-level extraction conventions every parser shares: discovering genuine
// data tables by their reserved class marker, reading tag-to-label header
// maps from data-stat attributes, iterating body rows while skipping
// sub-heading separator rows, and substituting an explicit missing sentinel
// for blank cells. Fetched pages are textually uncommented first, because
// the site hides some tables (notably playoff breakdowns) inside HTML
// comments where they would otherwise be invisible to traversal.
package scraper
