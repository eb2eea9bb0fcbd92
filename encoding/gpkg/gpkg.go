// Package gpkg writes a triangulation's edges to a GeoPackage-shaped
// SQLite database: an "edges" table holding one LINESTRING-WKT row per
// undirected edge, plus a gpkg_contents row describing that table. It is a
// collaborator in spec.md §1/§4.5's sense --
// the core triangulator never imports it and knows nothing of SQLite or
// GeoPackage; this package only consumes the public triangulate.Edge view.
package gpkg

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alexbaryzhikov/delaunay/triangulate"
)

const schema = `
CREATE TABLE IF NOT EXISTS gpkg_contents (
	table_name TEXT NOT NULL PRIMARY KEY,
	data_type TEXT NOT NULL,
	identifier TEXT
);
CREATE TABLE IF NOT EXISTS edges (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	geom TEXT NOT NULL
);
`

// Export opens (creating if necessary) a SQLite database at path and
// writes one row per edge to an "edges" table, each as LINESTRING WKT.
// It also records a minimal gpkg_contents entry, matching the table
// GeoPackage readers expect to find a feature table's metadata in.
func Export(path string, edges []triangulate.Edge) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("gpkg: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("gpkg: create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("gpkg: begin transaction: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO gpkg_contents (table_name, data_type, identifier) VALUES (?, ?, ?)`,
		"edges", "features", "delaunay-edges",
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("gpkg: write gpkg_contents: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO edges (geom) VALUES (?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("gpkg: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range edges {
		line := e.AsLine()
		wkt := fmt.Sprintf("LINESTRING(%g %g, %g %g)", line[0].X, line[0].Y, line[1].X, line[1].Y)
		if _, err := stmt.Exec(wkt); err != nil {
			tx.Rollback()
			return fmt.Errorf("gpkg: insert edge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("gpkg: commit: %w", err)
	}
	return nil
}
