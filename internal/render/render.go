// Package render draws a closed tour over its point set as a PNG image.
package render

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrTourMismatch is returned when the tour references points that do not
// exist in the given set.
var ErrTourMismatch = errors.New("render: tour does not match point set")

// TourPNG writes a plot of pts with the tour's edges drawn in visit order.
// The tour is expected closed (first and last vertex equal), but any vertex
// sequence whose indices are in range renders fine.
func TourPNG(pts []orb.Point, tour []int, path string) error {
	if len(pts) == 0 || len(tour) == 0 {
		return ErrTourMismatch
	}

	line := make(plotter.XYs, len(tour))
	var (
		i int
		v int
	)
	for i, v = range tour {
		if v < 0 || v >= len(pts) {
			return fmt.Errorf("%w: vertex %d of %d points", ErrTourMismatch, v, len(pts))
		}
		line[i].X = pts[v][0]
		line[i].Y = pts[v][1]
	}

	dots := make(plotter.XYs, len(pts))
	for i = range pts {
		dots[i].X = pts[i][0]
		dots[i].Y = pts[i][1]
	}

	p := plot.New()
	p.Title.Text = "tour"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	path2d, err := plotter.NewLine(line)
	if err != nil {
		return fmt.Errorf("render: line: %w", err)
	}
	scatter, err := plotter.NewScatter(dots)
	if err != nil {
		return fmt.Errorf("render: scatter: %w", err)
	}
	p.Add(plotter.NewGrid(), path2d, scatter)

	if err = p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
