package eos

import (
	"fmt"
	"math"
)

// symmetricTol is the relative tolerance on 2*up/V_imp for detecting a
// symmetric impact, where the release departs the reflection point and the
// first integration step degenerates. Empirically tuned in the source
// material, not derived.
const symmetricTol = 1e-5

// ReleaseIsentrope computes the release isentrope of m departing the state
// start on the prebuilt principal Hugoniot hug.
//
// With useMG false the isentrope is the principal Hugoniot itself, an
// unconditionally stable approximation. With useMG true the Mie-Grueneisen
// isentrope is integrated outward from the departure index in both
// directions over the Hugoniot volume grid; impactVel is required there for
// the symmetric-impact check. Integration instability masks the remainder of
// the affected branch and is not an error; only unusable inputs are.
func (m Material) ReleaseIsentrope(hug *Curve, start Point, useMG bool, impactVel float64) (isen *Curve, err error) {
	if hug == nil || hug.Len() <= 10 {
		return nil, fmt.Errorf("material %s: release isentrope needs a principal Hugoniot first", m.Name)
	}
	if !useMG {
		return hug.clone(), nil
	}
	if impactVel == 0 {
		return nil, fmt.Errorf("material %s: Mie-Grueneisen release needs the impact velocity", m.Name)
	}
	if start.P >= hug.MaxP() {
		return nil, fmt.Errorf("material %s: release departure pressure %.6g Pa exceeds Hugoniot range", m.Name, start.P)
	}
	var (
		n      = hug.Len()
		istart = 0
		// the volume grid decreases with index while pressure increases
		symmetric = math.Abs(2*start.Up/impactVel-1) < symmetricTol
	)
	for istart < n && hug.P[istart] <= start.P {
		istart++
	}
	isen = newEmptyCurve(n)
	copy(isen.V, hug.V)
	copy(isen.G, hug.G)

	// expansion branch: walk to larger volumes
	for i := istart - 1; i >= 0; i-- {
		var pn, en, un, vn float64
		if i == istart-1 {
			if isen.V[i]-start.V <= 0 || symmetric {
				// degenerate first step, pin to the departure state
				isen.P[i], isen.E[i], isen.Up[i] = start.P, start.E, start.Up
				isen.Valid[i] = true
				continue
			}
			pn, en, un, vn = start.P, start.E, start.Up, start.V
		} else {
			pn, en, un, vn = isen.P[i+1], isen.E[i+1], isen.Up[i+1], isen.V[i+1]
		}
		if !stepIsentrope(isen, hug, i, pn, en, un, vn) {
			break // remainder of this branch undefined
		}
	}

	// compression branch: walk to smaller volumes
	for i := istart; i < n; i++ {
		var pn, en, un, vn float64
		if i == istart {
			if isen.V[i]-start.V >= 0 || symmetric {
				isen.P[i], isen.E[i], isen.Up[i] = start.P, start.E, start.Up
				isen.Valid[i] = true
				continue
			}
			pn, en, un, vn = start.P, start.E, start.Up, start.V
		} else {
			pn, en, un, vn = isen.P[i-1], isen.E[i-1], isen.Up[i-1], isen.V[i-1]
		}
		if !stepIsentrope(isen, hug, i, pn, en, un, vn) {
			break
		}
	}
	return isen, nil
}

// stepIsentrope advances the finite-difference recurrence one volume step
// from the neighbor state (pn, en, un, vn) to grid index i. It reports false
// when the Riemann-invariant discriminant is non-positive, which terminates
// the branch.
func stepIsentrope(isen, hug *Curve, i int, pn, en, un, vn float64) bool {
	var (
		dv  = isen.V[i] - vn // signed volume step
		gov = hug.G[i] / hug.V[i]
		p   = (hug.P[i] - (hug.E[i]-en+pn*dv/2)*gov) / (1 - dv*gov/2)
		rad = -(pn - p) / (vn - isen.V[i])
	)
	if rad <= 0 {
		return false
	}
	isen.P[i] = p
	isen.E[i] = en - (pn+p)*dv/2
	isen.Up[i] = un - (pn-p)/math.Sqrt(rad)
	isen.Valid[i] = true
	return true
}
