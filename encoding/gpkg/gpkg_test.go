package gpkg_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexbaryzhikov/delaunay"
	"github.com/alexbaryzhikov/delaunay/encoding/gpkg"
	"github.com/alexbaryzhikov/delaunay/triangulate"
)

func TestExportWritesOneRowPerEdge(t *testing.T) {
	pts := []delaunay.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	edges, err := triangulate.Delaunay(pts)
	require.NoError(t, err)
	require.Len(t, edges, 1)

	path := filepath.Join(t.TempDir(), "out.gpkg")
	require.NoError(t, gpkg.Export(path, edges))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM edges`).Scan(&count))
	assert.Equal(t, 1, count)

	var geom string
	require.NoError(t, db.QueryRow(`SELECT geom FROM edges`).Scan(&geom))
	assert.Contains(t, geom, "LINESTRING")
}
