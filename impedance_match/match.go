// Package impedance_match solves the shared (up, P) state at each interface
// of a planar multi-layer impact and chains the solution across 2-4 layers.
package impedance_match

import (
	"fmt"

	"github.com/ImpactsWiki/impedance-match-app/eos"
	"github.com/ImpactsWiki/impedance-match-app/intersect"
)

// Branch labels how the upstream material reached the matched state.
type Branch string

const (
	BranchImpact  Branch = "impact"
	BranchRelease Branch = "release"
	BranchReshock Branch = "reshock"
)

// Interface is the solved state pair at one material interface. Both sides
// share particle velocity and pressure; V and E are interpolated on each
// material's own curve.
type Interface struct {
	Upstream        string
	Downstream      string
	Branch          Branch
	UpstreamState   eos.Point
	DownstreamState eos.Point
}

// matchFirst solves the impactor -> first-target interface at impact
// velocity vel by intersecting the target Hugoniot with the impactor
// Hugoniot reflected about vel.
func matchFirst(matA, matB eos.Material, hugA, hugB *eos.Curve, vel float64) (iface Interface, err error) {
	var (
		bx, by = hugB.Masked(func(up, p float64) (float64, float64) { return up, p })
		ax, ay = hugA.Masked(func(up, p float64) (float64, float64) { return vel - up, p })
		pts    = intersect.Curves(bx, by, ax, ay)
	)
	if len(pts) == 0 {
		return Interface{}, fmt.Errorf("no impedance-match solution for %s -> %s at %g m/s", matA.Name, matB.Name, vel)
	}
	up, p := pts[0].X, pts[0].Y
	iface = Interface{Upstream: matA.Name, Downstream: matB.Name, Branch: BranchImpact}
	if iface.UpstreamState, err = statePair(hugA, up, p, identity); err != nil {
		return Interface{}, fmt.Errorf("%s: %w", matA.Name, err)
	}
	if iface.DownstreamState, err = statePair(hugB, up, p, identity); err != nil {
		return Interface{}, fmt.Errorf("%s: %w", matB.Name, err)
	}
	return iface, nil
}

// matchNext solves a subsequent interface: matA, already shocked to state
// upstream, drives into matB at rest. The branch is classified by comparing
// matB's Hugoniot pressure at the upstream particle velocity against the
// upstream pressure.
func matchNext(matA, matB eos.Material, hugA, hugB *eos.Curve, upstream eos.Point, vel float64, useMG bool) (iface Interface, err error) {
	ptB, err := matB.StateAt(hugB, upstream.Up)
	if err != nil {
		return Interface{}, fmt.Errorf("%s -> %s: %w", matA.Name, matB.Name, err)
	}
	var (
		path    *eos.Curve
		xform   func(up float64) float64
		bx, by  = hugB.Masked(func(up, p float64) (float64, float64) { return up, p })
		reflect = func(up float64) float64 { return 2*upstream.Up - up }
	)
	if ptB.P > upstream.P {
		// downstream has the higher impedance: reshock matA
		iface.Branch = BranchReshock
		if path, err = matA.ReshockHugoniot(hugA, upstream, useMG); err != nil {
			return Interface{}, err
		}
		xform = identity
	} else {
		// downstream has the lower impedance: release matA
		iface.Branch = BranchRelease
		if path, err = matA.ReleaseIsentrope(hugA, upstream, useMG, vel); err != nil {
			return Interface{}, err
		}
		xform = reflect
	}
	px, py := path.Masked(func(up, p float64) (float64, float64) { return xform(up), p })
	pts := intersect.Curves(bx, by, px, py)
	if len(pts) == 0 {
		return Interface{}, fmt.Errorf("no %s intersection between %s and %s", iface.Branch, matA.Name, matB.Name)
	}
	up, p := pts[0].X, pts[0].Y
	iface.Upstream, iface.Downstream = matA.Name, matB.Name
	if iface.UpstreamState, err = statePair(path, up, p, xform); err != nil {
		return Interface{}, fmt.Errorf("%s: %w", matA.Name, err)
	}
	if iface.DownstreamState, err = statePair(hugB, up, p, identity); err != nil {
		return Interface{}, fmt.Errorf("%s: %w", matB.Name, err)
	}
	return iface, nil
}

// statePair completes a matched (up, p) pair into a full state by
// interpolating V and E on the given curve in the matching frame.
func statePair(c *eos.Curve, up, p float64, xform func(up float64) float64) (pt eos.Point, err error) {
	v, e, err := c.VEAt(up, xform)
	if err != nil {
		return eos.Point{}, err
	}
	return eos.Point{Up: up, P: p, V: v, E: e}, nil
}

func identity(up float64) float64 {
	return up
}
