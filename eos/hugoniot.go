package eos

import (
	"fmt"
	"math"
)

// Hugoniot builds the principal Hugoniot of m over the ascending
// particle-velocity grid up (starting at 0). Coefficient sets that produce a
// negative pressure anywhere on the grid are rejected with the offending
// material and grid bound.
func (m Material) Hugoniot(up []float64) (hug *Curve, err error) {
	if err = m.Validate(); err != nil {
		return nil, err
	}
	if len(up) < 2 {
		return nil, fmt.Errorf("material %s: need at least 2 grid points, got %d", m.Name, len(up))
	}
	var (
		v0    = m.V0()
		g0, q = m.Gamma()
	)
	hug = newEmptyCurve(len(up))
	copy(hug.Up, up)
	for i, u := range up {
		us := m.Us(u)
		p := m.Rho0 * u * us
		if p < 0 || (u > 0 && us <= 0) {
			return nil, fmt.Errorf("material %s: negative Hugoniot pressure at up=%.6g m/s (grid bound %.6g m/s)",
				m.Name, u, up[len(up)-1])
		}
		v := v0 * (1 - u/us)
		hug.Us[i] = us
		hug.P[i] = p
		hug.V[i] = v
		hug.E[i] = 0.5 * p * (v0 - v)
		hug.G[i] = g0 * math.Pow(m.Rho0*v, q)
		hug.Valid[i] = true
	}
	return hug, nil
}

// StateAt interpolates the full Hugoniot state at particle velocity u.
// Specific volume is interpolated in density space, matching how the
// matching step treats specific volume everywhere.
func (m Material) StateAt(hug *Curve, u float64) (pt Point, err error) {
	pt.Up = u
	if pt.P, err = interpOnCurve(u, hug.Up, hug.P); err != nil {
		return Point{}, fmt.Errorf("material %s: %w", m.Name, err)
	}
	if pt.V, err = interpDensity(u, hug.Up, hug.V); err != nil {
		return Point{}, fmt.Errorf("material %s: %w", m.Name, err)
	}
	if pt.E, err = interpOnCurve(u, hug.Up, hug.E); err != nil {
		return Point{}, fmt.Errorf("material %s: %w", m.Name, err)
	}
	return pt, nil
}
