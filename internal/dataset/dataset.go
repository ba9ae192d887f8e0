// Package dataset reads planar point sets from CSV files.
//
// The accepted format is one point per row, "x,y", with an optional header
// row whose first cell is not numeric. Blank lines are skipped.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

var (
	// ErrBadRecord marks a CSV row that is not a parseable "x,y" pair.
	ErrBadRecord = errors.New("dataset: malformed record")
	// ErrEmpty marks a file that yields no points at all.
	ErrEmpty = errors.New("dataset: no points found")
)

// LoadCSV reads the file at path and returns its points in file order.
func LoadCSV(path string) ([]orb.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	pts, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return pts, nil
}

// ParseCSV reads "x,y" rows from r. A single leading header row is tolerated.
func ParseCSV(r io.Reader) ([]orb.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width is validated per record below
	cr.TrimLeadingSpace = true

	var (
		pts  []orb.Point
		row  int
		rec  []string
		err  error
		x, y float64
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		row++

		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 2", ErrBadRecord, row, len(rec))
		}

		x, err = strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			// A non-numeric first row is treated as the header, once.
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRecord, row, err)
		}
		y, err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRecord, row, err)
		}

		pts = append(pts, orb.Point{x, y})
	}

	if len(pts) == 0 {
		return nil, ErrEmpty
	}
	return pts, nil
}
