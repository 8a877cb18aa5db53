package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ironsheep/region-trace/internal/segment"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a SQLite database holding regions and perimeters.
type DB struct {
	*sql.DB
}

// OpenDB opens (creating if needed) the SQLite database at path and applies the schema.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{db}, nil
}

// SaveSQLite writes records into the SQLite database at path.
func SaveSQLite(ctx context.Context, path string, records []Record) error {
	db, err := OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.ReplaceAll(ctx, records)
}

// ReplaceAll deletes every stored region and inserts records in one transaction.
// Region ids are the record indices.
func (db *DB) ReplaceAll(ctx context.Context, records []Record) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"perimeter_points", "perimeters", "region_pixels", "regions"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insertRegion, err := tx.PrepareContext(ctx, "INSERT INTO regions (id, seed_x, seed_y, area) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertRegion.Close()

	insertPixel, err := tx.PrepareContext(ctx, "INSERT INTO region_pixels (region_id, x, y) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertPixel.Close()

	insertPerimeter, err := tx.PrepareContext(ctx, "INSERT INTO perimeters (region_id, loop_index, length) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertPerimeter.Close()

	insertPoint, err := tx.PrepareContext(ctx, "INSERT INTO perimeter_points (perimeter_id, seq, x, y) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertPoint.Close()

	for id, r := range records {
		var pixels []segment.Point
		if r.Mask != nil {
			pixels = segment.MarkedPoints(r.Mask)
		}

		if _, err := insertRegion.ExecContext(ctx, id, r.Seed.X, r.Seed.Y, len(pixels)); err != nil {
			return fmt.Errorf("failed to insert region %d: %w", id, err)
		}
		for _, p := range pixels {
			if _, err := insertPixel.ExecContext(ctx, id, p.X, p.Y); err != nil {
				return fmt.Errorf("failed to insert pixel %v of region %d: %w", p, id, err)
			}
		}

		for loopIdx, loop := range r.Perimeters {
			res, err := insertPerimeter.ExecContext(ctx, id, loopIdx, len(loop))
			if err != nil {
				return fmt.Errorf("failed to insert perimeter %d of region %d: %w", loopIdx, id, err)
			}
			perimeterID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for seq, p := range loop {
				if _, err := insertPoint.ExecContext(ctx, perimeterID, seq, p.X, p.Y); err != nil {
					return fmt.Errorf("failed to insert perimeter point: %w", err)
				}
			}
		}
	}

	return tx.Commit()
}

// RegionRow is one row of the regions table.
type RegionRow struct {
	ID   int
	Seed segment.Point
	Area int
}

// Regions returns all stored regions ordered by id.
func (db *DB) Regions(ctx context.Context) ([]RegionRow, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, seed_x, seed_y, area FROM regions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regions []RegionRow
	for rows.Next() {
		var r RegionRow
		if err := rows.Scan(&r.ID, &r.Seed.X, &r.Seed.Y, &r.Area); err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// RegionPixels returns the stored pixels of a region in row-major order.
func (db *DB) RegionPixels(ctx context.Context, regionID int) ([]segment.Point, error) {
	return db.points(ctx, "SELECT x, y FROM region_pixels WHERE region_id = ? ORDER BY y, x", regionID)
}

// Perimeters returns the stored loops of a region ordered by loop index.
func (db *DB) Perimeters(ctx context.Context, regionID int) (segment.PerimeterSet, error) {
	rows, err := db.QueryContext(ctx, "SELECT id FROM perimeters WHERE region_id = ? ORDER BY loop_index", regionID)
	if err != nil {
		return nil, err
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	set := make(segment.PerimeterSet, 0, len(ids))
	for _, id := range ids {
		points, err := db.points(ctx, "SELECT x, y FROM perimeter_points WHERE perimeter_id = ? ORDER BY seq", id)
		if err != nil {
			return nil, err
		}
		set = append(set, segment.Perimeter(points))
	}
	return set, nil
}

func (db *DB) points(ctx context.Context, query string, arg any) ([]segment.Point, error) {
	rows, err := db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []segment.Point
	for rows.Next() {
		var p segment.Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
