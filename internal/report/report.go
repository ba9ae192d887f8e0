// Package report prints solver results for terminal consumption.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/salesman/tsp"
)

// Run pairs a solver result with the wall time it took to produce.
type Run struct {
	Label   string
	Result  tsp.Result
	Elapsed time.Duration
}

// Reporter renders Runs to a writer. Colors follow the fatih/color global
// switch, so piping output or setting NO_COLOR degrades to plain text.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter writing to w. noColor forces plain output via the
// fatih/color global switch; false leaves the switch alone, so terminal
// auto-detection and the NO_COLOR convention still apply.
func New(w io.Writer, noColor bool) *Reporter {
	if noColor {
		color.NoColor = true
	}

	return &Reporter{w: w}
}

// Print writes one run: label, tour, cost and timing.
func (r *Reporter) Print(run Run) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	num := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(r.w, "%s\n", heading(run.Label))
	fmt.Fprintf(r.w, "  tour: %v\n", run.Result.Tour)
	fmt.Fprintf(r.w, "  cost: %s\n", num(fmt.Sprintf("%.6f", run.Result.Cost)))
	fmt.Fprintf(r.w, "  time: %s\n", run.Elapsed.Round(time.Microsecond))
}

// Gap writes the relative excess of the heuristic cost over the exact cost,
// in percent. A zero exact cost (degenerate all-coincident input) prints the
// absolute difference instead.
func (r *Reporter) Gap(exact, heuristic Run) {
	label := color.New(color.FgYellow, color.Bold).SprintFunc()

	if exact.Result.Cost == 0 {
		fmt.Fprintf(r.w, "%s %.6f (absolute)\n", label("heuristic gap:"),
			heuristic.Result.Cost-exact.Result.Cost)
		return
	}
	gap := (heuristic.Result.Cost - exact.Result.Cost) / exact.Result.Cost * 100
	fmt.Fprintf(r.w, "%s %.3f%%\n", label("heuristic gap:"), gap)
}
