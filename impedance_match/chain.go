package impedance_match

import (
	"fmt"

	"github.com/ImpactsWiki/impedance-match-app/eos"
)

const (
	// DefaultGridPoints matches the original tool's grid resolution.
	DefaultGridPoints = 2001
	// DefaultSpanFactor sizes the particle-velocity grid relative to the
	// impact velocity so the layer Hugoniots overlap at relevant
	// velocities; values below 2 can leave the curves short of a crossing.
	DefaultSpanFactor = 2.0
	// minGridPoints is what the Mie-Grueneisen integrator needs to walk.
	minGridPoints = 11
)

// Stack is one impedance-match invocation: an ordered impactor-first list of
// 2-4 material layers and the impact conditions. All fields are read-only
// during Solve; independent invocations may run concurrently.
type Stack struct {
	Materials      []eos.Material
	ImpactVelocity float64 // m/s, > 0
	GridPoints     int     // 0 selects DefaultGridPoints
	SpanFactor     float64 // 0 selects DefaultSpanFactor
	UseMGModel     bool    // Mie-Gruneisen release/reshock instead of the Hugoniot approximation
}

// Solution reports the chain outcome. Interfaces holds every interface
// solved before a failure, in order; when Ok is false, FailedInterface
// indexes the interface that failed and Reason says why.
type Solution struct {
	Interfaces      []Interface
	Ok              bool
	FailedInterface int // -1 when Ok
	Reason          string
}

// Validate rejects configurations before any computation.
func (s *Stack) Validate() error {
	if len(s.Materials) < 2 {
		return fmt.Errorf("need at least 2 materials, got %d", len(s.Materials))
	}
	if len(s.Materials) > 4 {
		return fmt.Errorf("at most 4 materials supported, got %d", len(s.Materials))
	}
	if s.ImpactVelocity <= 0 {
		return fmt.Errorf("impact velocity must be positive, got %g m/s", s.ImpactVelocity)
	}
	if s.GridPoints != 0 && s.GridPoints < minGridPoints {
		return fmt.Errorf("grid needs at least %d points, got %d", minGridPoints, s.GridPoints)
	}
	if s.SpanFactor != 0 && s.SpanFactor < 2 {
		return fmt.Errorf("span factor must be >= 2, got %g", s.SpanFactor)
	}
	return nil
}

// Solve sequences the interface matcher across the stack, propagating each
// interface's downstream state as the next interface's upstream condition.
// Configuration problems are returned as an error before any curve is
// built; every later failure is reported in the Solution, preserving the
// interfaces already solved.
func (s *Stack) Solve() (sol *Solution, err error) {
	if err = s.Validate(); err != nil {
		return nil, err
	}
	var (
		vel    = s.ImpactVelocity
		points = s.GridPoints
		factor = s.SpanFactor
	)
	if points == 0 {
		points = DefaultGridPoints
	}
	if factor == 0 {
		factor = DefaultSpanFactor
	}
	grid := eos.Grid(points, factor*vel)
	sol = &Solution{FailedInterface: -1}
	fail := func(i int, cause error) (*Solution, error) {
		sol.Ok = false
		sol.FailedInterface = i
		sol.Reason = cause.Error()
		return sol, nil
	}

	// Hugoniots are built as the chain reaches each layer, so a bad later
	// layer fails its own interface without destroying earlier results.
	hugs := make([]*eos.Curve, len(s.Materials))
	for k := 0; k < 2; k++ {
		if hugs[k], err = s.Materials[k].Hugoniot(grid); err != nil {
			return fail(0, err)
		}
	}
	iface, err := matchFirst(s.Materials[0], s.Materials[1], hugs[0], hugs[1], vel)
	if err != nil {
		return fail(0, err)
	}
	fmt.Printf("IM %d: %s -> %s (%s) up =%9.2f m/s, P =%9.4f GPa\n",
		1, iface.Upstream, iface.Downstream, iface.Branch, iface.DownstreamState.Up, iface.DownstreamState.P/1e9)
	sol.Interfaces = append(sol.Interfaces, iface)

	upstream := iface.DownstreamState
	for k := 2; k < len(s.Materials); k++ {
		if hugs[k], err = s.Materials[k].Hugoniot(grid); err != nil {
			return fail(k-1, err)
		}
		if iface, err = matchNext(s.Materials[k-1], s.Materials[k], hugs[k-1], hugs[k], upstream, vel, s.UseMGModel); err != nil {
			return fail(k-1, err)
		}
		fmt.Printf("IM %d: %s -> %s (%s) up =%9.2f m/s, P =%9.4f GPa\n",
			k, iface.Upstream, iface.Downstream, iface.Branch, iface.DownstreamState.Up, iface.DownstreamState.P/1e9)
		sol.Interfaces = append(sol.Interfaces, iface)
		upstream = iface.DownstreamState
	}
	sol.Ok = true
	return sol, nil
}
