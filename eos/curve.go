package eos

import "math"

// Curve is an EOS locus (Hugoniot, isentrope, or reshock Hugoniot) sampled
// over a particle-velocity grid. Valid marks the samples where the
// construction is defined; numeric values at invalid samples are
// meaningless. Between any two valid samples P and 1/V are assumed monotone
// non-decreasing in Up for interpolation-based matching to hold (documented
// precondition, not enforced).
type Curve struct {
	Up    []float64 // particle velocity m/s
	Us    []float64 // shock velocity m/s (principal Hugoniot only)
	P     []float64 // pressure Pa
	V     []float64 // specific volume m3/kg
	E     []float64 // specific internal energy J/kg
	G     []float64 // Grueneisen parameter [-]
	Valid []bool
}

// Point is a single matched EOS state at an interface.
type Point struct {
	Up float64 // m/s
	P  float64 // Pa
	V  float64 // m3/kg
	E  float64 // J/kg
}

// Len returns the sample count.
func (c *Curve) Len() int {
	return len(c.Up)
}

// MaxP returns the largest pressure over the valid samples.
func (c *Curve) MaxP() (pmax float64) {
	pmax = math.Inf(-1)
	for i, ok := range c.Valid {
		if ok && c.P[i] > pmax {
			pmax = c.P[i]
		}
	}
	return
}

// Masked returns a transform of the curve as (x, y) polylines with NaN at
// invalid samples, so downstream intersection skips masked regions instead
// of bridging them. xform maps (up, p) of a valid sample to plot space.
func (c *Curve) Masked(xform func(up, p float64) (x, y float64)) (xs, ys []float64) {
	xs = make([]float64, c.Len())
	ys = make([]float64, c.Len())
	for i := range c.Up {
		if !c.Valid[i] {
			xs[i], ys[i] = math.NaN(), math.NaN()
			continue
		}
		xs[i], ys[i] = xform(c.Up[i], c.P[i])
	}
	return
}

// MaskedColumn returns column vals with NaN substituted at invalid samples.
func (c *Curve) MaskedColumn(vals []float64) (out []float64) {
	out = make([]float64, len(vals))
	for i, v := range vals {
		if c.Valid[i] {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return
}

func newEmptyCurve(n int) *Curve {
	return &Curve{
		Up:    make([]float64, n),
		Us:    make([]float64, n),
		P:     make([]float64, n),
		V:     make([]float64, n),
		E:     make([]float64, n),
		G:     make([]float64, n),
		Valid: make([]bool, n),
	}
}

func (c *Curve) clone() *Curve {
	o := newEmptyCurve(c.Len())
	copy(o.Up, c.Up)
	copy(o.Us, c.Us)
	copy(o.P, c.P)
	copy(o.V, c.V)
	copy(o.E, c.E)
	copy(o.G, c.G)
	copy(o.Valid, c.Valid)
	return o
}
