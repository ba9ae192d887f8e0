package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/internal/dataset"
)

func TestParseCSV_PlainRows(t *testing.T) {
	pts, err := dataset.ParseCSV(strings.NewReader("2,7\n4,6\n18,3\n"))
	require.NoError(t, err)
	require.Equal(t, []orb.Point{{2, 7}, {4, 6}, {18, 3}}, pts)
}

func TestParseCSV_HeaderAndWhitespace(t *testing.T) {
	in := "x,y\n 1.5, -2.25\n\n3,4\n"
	pts, err := dataset.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []orb.Point{{1.5, -2.25}, {3, 4}}, pts)
}

func TestParseCSV_Malformed(t *testing.T) {
	_, err := dataset.ParseCSV(strings.NewReader("1,2\n3\n"))
	require.ErrorIs(t, err, dataset.ErrBadRecord)

	_, err = dataset.ParseCSV(strings.NewReader("1,2\n3,oops\n"))
	require.ErrorIs(t, err, dataset.ErrBadRecord)

	// A non-numeric row is only forgiven as the first (header) row.
	_, err = dataset.ParseCSV(strings.NewReader("1,2\nx,y\n"))
	require.ErrorIs(t, err, dataset.ErrBadRecord)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := dataset.ParseCSV(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.ParseCSV(strings.NewReader("x,y\n"))
	require.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestLoadCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n3,0\n3,4\n"), 0o644))

	pts, err := dataset.LoadCSV(path)
	require.NoError(t, err)
	require.Equal(t, []orb.Point{{0, 0}, {3, 0}, {3, 4}}, pts)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := dataset.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
