package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Interp evaluates the piecewise-linear interpolant of (xs, ys) at x.
// xs may run in either direction; non-finite samples and samples that do not
// advance the abscissa are dropped before fitting. Outside the fitted range
// the end values are returned, matching np.interp.
func Interp(x float64, xs, ys []float64) (y float64, err error) {
	var (
		xc, yc = CleanMonotone(xs, ys)
		pl     interp.PiecewiseLinear
	)
	if len(xc) < 2 {
		return 0, fmt.Errorf("interp: fewer than 2 usable samples (%d of %d)", len(xc), len(xs))
	}
	if err = pl.Fit(xc, yc); err != nil {
		return 0, fmt.Errorf("interp: %w", err)
	}
	return pl.Predict(x), nil
}

// CleanMonotone extracts the strictly increasing, finite subsequence of
// (xs, ys), reversing first when xs runs downhill.
func CleanMonotone(xs, ys []float64) (xc, yc []float64) {
	var (
		n          = len(xs)
		first      = -1
		last       = -1
		descending bool
	)
	for i := 0; i < n; i++ {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 || first == last {
		return nil, nil
	}
	descending = xs[last] < xs[first]
	xc = make([]float64, 0, n)
	yc = make([]float64, 0, n)
	push := func(x, y float64) {
		if !isFinite(x) || !isFinite(y) {
			return
		}
		if len(xc) > 0 && x <= xc[len(xc)-1] {
			return
		}
		xc = append(xc, x)
		yc = append(yc, y)
	}
	if descending {
		for i := n - 1; i >= 0; i-- {
			push(xs[i], ys[i])
		}
	} else {
		for i := 0; i < n; i++ {
			push(xs[i], ys[i])
		}
	}
	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
