package impedance_match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ImpactsWiki/impedance-match-app/eos"
)

var (
	aluminum = eos.Material{Name: "Aluminum", Rho0: 2700, C0: 5350, S1: 1.16, G0: 2.0, Q: 1.0}
	copper   = eos.Material{Name: "Copper", Rho0: 8930, C0: 3940, S1: 1.489, G0: 1.99, Q: 1.0}
	pmma     = eos.Material{Name: "PMMA", Rho0: 1186, C0: 2598, S1: 1.516, G0: 0.97, Q: 1.0}
)

func TestSymmetricImpact(t *testing.T) {
	// identical materials at 2000 m/s must share the state at up = 1000,
	// P = rho0*up*(c0 + s1*up)
	for _, useMG := range []bool{false, true} {
		s := Stack{
			Materials:      []eos.Material{aluminum, aluminum},
			ImpactVelocity: 2000,
			UseMGModel:     useMG,
		}
		sol, err := s.Solve()
		assert.NoError(t, err)
		assert.True(t, sol.Ok)
		assert.Equal(t, 1, len(sol.Interfaces))
		iface := sol.Interfaces[0]
		assert.Equal(t, BranchImpact, iface.Branch)
		assert.InEpsilon(t, 1000, iface.DownstreamState.Up, 1.e-6)
		assert.InEpsilon(t, 2700*1000.*(5350+1.16*1000), iface.DownstreamState.P, 1.e-6)
		// both sides carry the same state for a symmetric pair
		assert.InEpsilon(t, iface.DownstreamState.V, iface.UpstreamState.V, 1.e-9)
		assert.InEpsilon(t, iface.DownstreamState.E, iface.UpstreamState.E, 1.e-9)
	}
}

func TestSolveIdempotent(t *testing.T) {
	s := Stack{
		Materials:      []eos.Material{aluminum, copper, pmma},
		ImpactVelocity: 1500,
	}
	sol1, err := s.Solve()
	assert.NoError(t, err)
	sol2, err := s.Solve()
	assert.NoError(t, err)
	assert.Equal(t, sol1, sol2)
}

func TestConfigurationRejected(t *testing.T) {
	_, err := (&Stack{Materials: []eos.Material{aluminum}, ImpactVelocity: 2000}).Solve()
	assert.Error(t, err)
	_, err = (&Stack{Materials: []eos.Material{aluminum, aluminum}, ImpactVelocity: 0}).Solve()
	assert.Error(t, err)
	_, err = (&Stack{Materials: []eos.Material{aluminum, aluminum}, ImpactVelocity: -1}).Solve()
	assert.Error(t, err)
	five := []eos.Material{aluminum, aluminum, aluminum, aluminum, aluminum}
	_, err = (&Stack{Materials: five, ImpactVelocity: 2000}).Solve()
	assert.Error(t, err)
	_, err = (&Stack{Materials: []eos.Material{aluminum, aluminum}, ImpactVelocity: 2000, SpanFactor: 1.5}).Solve()
	assert.Error(t, err)
	_, err = (&Stack{Materials: []eos.Material{aluminum, aluminum}, ImpactVelocity: 2000, GridPoints: 5}).Solve()
	assert.Error(t, err)
}

func TestReleaseBranchSelected(t *testing.T) {
	// PMMA's Hugoniot pressure at the aluminum departure up is far below
	// the departure pressure, so the driver must release, not reshock
	for _, useMG := range []bool{false, true} {
		s := Stack{
			Materials:      []eos.Material{aluminum, aluminum, pmma},
			ImpactVelocity: 2000,
			UseMGModel:     useMG,
		}
		sol, err := s.Solve()
		assert.NoError(t, err)
		assert.True(t, sol.Ok, "mode useMG=%v: %s", useMG, sol.Reason)
		assert.Equal(t, 2, len(sol.Interfaces))
		rel := sol.Interfaces[1]
		assert.Equal(t, BranchRelease, rel.Branch)
		// released into a softer window: faster and lower pressure
		assert.True(t, rel.DownstreamState.Up > 1000 && rel.DownstreamState.Up < 2000)
		assert.True(t, rel.DownstreamState.P < sol.Interfaces[0].DownstreamState.P)
	}
}

func TestReshockBranchSelected(t *testing.T) {
	for _, useMG := range []bool{false, true} {
		s := Stack{
			Materials:      []eos.Material{aluminum, aluminum, copper},
			ImpactVelocity: 2000,
			UseMGModel:     useMG,
		}
		sol, err := s.Solve()
		assert.NoError(t, err)
		assert.True(t, sol.Ok, "mode useMG=%v: %s", useMG, sol.Reason)
		rs := sol.Interfaces[1]
		assert.Equal(t, BranchReshock, rs.Branch)
		// reshocked against a stiffer target: slower and higher pressure
		assert.True(t, rs.DownstreamState.Up < 1000)
		assert.True(t, rs.DownstreamState.P > sol.Interfaces[0].DownstreamState.P)
	}
}

func TestFourLayerChain(t *testing.T) {
	s := Stack{
		Materials:      []eos.Material{aluminum, aluminum, copper, pmma},
		ImpactVelocity: 2000,
	}
	sol, err := s.Solve()
	assert.NoError(t, err)
	assert.True(t, sol.Ok)
	assert.Equal(t, 3, len(sol.Interfaces))
	assert.Equal(t, BranchImpact, sol.Interfaces[0].Branch)
	assert.Equal(t, BranchReshock, sol.Interfaces[1].Branch)
	assert.Equal(t, BranchRelease, sol.Interfaces[2].Branch)
	// states chain: each interface's upstream condition is the previous
	// downstream state, so pressures drop into the PMMA window
	assert.True(t, sol.Interfaces[2].DownstreamState.P < sol.Interfaces[1].DownstreamState.P)
}

func TestLaterFailurePreservesEarlierResults(t *testing.T) {
	bad := eos.Material{Name: "BadMat", Rho0: 1000, C0: 1000, S1: -2}
	s := Stack{
		Materials:      []eos.Material{aluminum, aluminum, bad},
		ImpactVelocity: 2000,
	}
	sol, err := s.Solve()
	assert.NoError(t, err)
	assert.False(t, sol.Ok)
	assert.Equal(t, 1, sol.FailedInterface)
	assert.Equal(t, 1, len(sol.Interfaces))
	assert.Contains(t, sol.Reason, "BadMat")
	// the first interface result survives intact
	assert.InEpsilon(t, 1000, sol.Interfaces[0].DownstreamState.Up, 1.e-6)
}

func TestFirstInterfaceFailureAbortsChain(t *testing.T) {
	bad := eos.Material{Name: "BadMat", Rho0: 1000, C0: 1000, S1: -2}
	s := Stack{
		Materials:      []eos.Material{bad, aluminum, copper},
		ImpactVelocity: 2000,
	}
	sol, err := s.Solve()
	assert.NoError(t, err)
	assert.False(t, sol.Ok)
	assert.Equal(t, 0, sol.FailedInterface)
	assert.Equal(t, 0, len(sol.Interfaces))
}
