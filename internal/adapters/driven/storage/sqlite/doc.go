// Package sqlite persists the worksheet record in a local SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Records live in a key/value table, one row per storage
// key, so the worksheet is stored exactly as the other backends store it:
// a single serialized record under driven.WorksheetKey.
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.squareone/data/squareone.db
package sqlite
