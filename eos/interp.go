package eos

import (
	"github.com/ImpactsWiki/impedance-match-app/utils"
)

func interpOnCurve(x float64, xs, ys []float64) (float64, error) {
	return utils.Interp(x, xs, ys)
}

// VEAt interpolates specific volume and energy on the curve at abscissa x,
// where xform maps each valid sample's particle velocity into the matching
// frame (identity for a Hugoniot, reflection for a release isentrope).
// Invalid samples are excluded from the fit.
func (c *Curve) VEAt(x float64, xform func(up float64) float64) (v, e float64, err error) {
	var (
		xs  = make([]float64, c.Len())
		inv = c.MaskedColumn(c.V)
		es  = c.MaskedColumn(c.E)
	)
	for i := range xs {
		if c.Valid[i] {
			xs[i] = xform(c.Up[i])
			inv[i] = 1 / inv[i]
		} else {
			xs[i] = inv[i] // NaN
		}
	}
	rho, err := utils.Interp(x, xs, inv)
	if err != nil {
		return 0, 0, err
	}
	if e, err = utils.Interp(x, xs, es); err != nil {
		return 0, 0, err
	}
	return 1 / rho, e, nil
}

// interpDensity interpolates specific volume at x by interpolating density
// and inverting, which stays monotone where V alone may not.
func interpDensity(x float64, xs, vs []float64) (v float64, err error) {
	inv := make([]float64, len(vs))
	for i, vi := range vs {
		inv[i] = 1 / vi
	}
	rho, err := utils.Interp(x, xs, inv)
	if err != nil {
		return 0, err
	}
	return 1 / rho, nil
}
