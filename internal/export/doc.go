// Package export writes tables to files on the caller's behalf.
//
// The export package renders a table as indented JSON (one object per row,
// missing cells as null) or CSV and writes it under a caller-chosen path,
// creating parent directories and expanding a leading ~. The scraper core
// never reads these files back; repeated runs re-fetch.
package export
