package store

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ironsheep/region-trace/internal/segment"
)

// Record is one grown region with the seed it was grown from.
type Record struct {
	Seed       segment.Point
	Mask       *segment.Mask
	Perimeters segment.PerimeterSet
}

// IsSQLitePath reports whether path names a SQLite target.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Save writes records to path in the format its extension selects.
func Save(ctx context.Context, path string, records []Record) error {
	if IsSQLitePath(path) {
		return SaveSQLite(ctx, path, records)
	}
	return SaveText(path, records)
}
