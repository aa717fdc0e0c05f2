package eos

import (
	"fmt"
	"math"
)

// ReshockHugoniot computes the second-shock Hugoniot of m departing the
// state start on the prebuilt principal Hugoniot hug.
//
// With useMG false the principal Hugoniot is mirrored about the departure
// particle velocity (up -> 2*up0 - up) and samples below the departure
// pressure are masked. With useMG true the Mie-Grueneisen reshock state is
// evaluated at every grid point at or above the departure pressure; points
// failing positivity of (P - P0)*(V0' - V), points below the departure
// pressure, and non-physical pressure folds are masked, never fatal.
func (m Material) ReshockHugoniot(hug *Curve, start Point, useMG bool) (rs *Curve, err error) {
	if hug == nil || hug.Len() < 2 {
		return nil, fmt.Errorf("material %s: reshock Hugoniot needs a principal Hugoniot first", m.Name)
	}
	var n = hug.Len()
	rs = newEmptyCurve(n)
	copy(rs.V, hug.V)
	copy(rs.G, hug.G)

	if !useMG {
		copy(rs.P, hug.P)
		copy(rs.E, hug.E)
		for i := range rs.Up {
			rs.Up[i] = 2*start.Up - hug.Up[i]
			rs.Valid[i] = hug.Valid[i] && hug.P[i] >= start.P
		}
		return rs, nil
	}

	v0 := m.V0()
	for i := 0; i < n; i++ {
		if hug.P[i] <= start.P {
			continue
		}
		var (
			gov2 = hug.G[i] / hug.V[i] / 2
			p    = (hug.P[i] + (start.P-hug.P[i])*(v0-hug.V[i])*gov2) / (1 - gov2*(start.V-hug.V[i]))
			prod = (p - start.P) * (start.V - hug.V[i])
		)
		if prod <= 0 || p < start.P {
			continue
		}
		rs.P[i] = p
		rs.E[i] = start.E + 0.5*(p+start.P)*(start.V-hug.V[i])
		rs.Up[i] = start.Up - math.Sqrt(prod)
		rs.Valid[i] = true
	}

	// mask rollover: pressure must not decrease relative to its
	// lower-pressure neighbor
	last := math.Inf(-1)
	for i := 0; i < n; i++ {
		if !rs.Valid[i] {
			continue
		}
		if rs.P[i] < last {
			rs.Valid[i] = false
			continue
		}
		last = rs.P[i]
	}
	return rs, nil
}
