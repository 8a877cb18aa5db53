// Package store persists grown regions and their perimeters.
//
// Two formats are supported and chosen by file extension in Save:
//
//   - Text (any extension other than .db/.sqlite): for each region i a line
//     "region i" followed by one line of its marked points in row-major order,
//     then for each region i a line "perimeter i" followed by one line per loop.
//     Points are written as "[x, y] " with a trailing space.
//   - SQLite (.db, .sqlite): the tables in schema.sql, written in a single
//     transaction. Saving replaces whatever the database held before.
//
// ReadText parses the text format back, mainly for round-trip checks.
package store
