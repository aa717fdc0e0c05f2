// Package eos builds the shock equation-of-state curves used by the
// impedance-match solver: the principal Hugoniot of a material, and the
// Mie-Grueneisen release isentrope and reshock Hugoniot departing a state on
// it. Everything is in MKS units.
package eos

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Material holds the Hugoniot and Grueneisen parameters of one layer.
// The nonzero pattern of C0, S1, S2, D selects the Us(up) form:
//
//	D != 0           Us = C0 + S1*up - S2*up*exp(-D*up)   (universal liquid)
//	S2 != 0, D == 0  Us = C0 + S1*up + S2*up^2            (quadratic)
//	otherwise        Us = C0 + S1*up                      (linear)
//
// Reference state is P0 = 0, E0 = 0.
type Material struct {
	Name string  `yaml:"name"`
	Rho0 float64 `yaml:"rho0"` // initial density kg/m3
	C0   float64 `yaml:"c0"`   // bulk sound speed m/s
	S1   float64 `yaml:"s1"`   // [-]
	S2   float64 `yaml:"s2"`   // s/m (quadratic) or [-] (universal liquid)
	D    float64 `yaml:"d"`    // s/m
	G0   float64 `yaml:"g0"`   // Grueneisen parameter [-]
	Q    float64 `yaml:"q"`    // Grueneisen volume exponent [-]
	Note string  `yaml:"note"`
}

// V0 is the initial specific volume.
func (m Material) V0() float64 {
	return 1 / m.Rho0
}

// Us evaluates the shock velocity at particle velocity up for the material's
// Hugoniot form.
func (m Material) Us(up float64) float64 {
	if m.D != 0 {
		return m.C0 + m.S1*up - m.S2*up*math.Exp(-m.D*up)
	}
	return m.C0 + m.S1*up + m.S2*up*up
}

// Gamma returns the effective Grueneisen parameters, substituting the
// defaults g0=1, q=1 with a warning when g0 has not been set.
func (m Material) Gamma() (g0, q float64) {
	if m.G0 <= 0 {
		fmt.Printf("WARNING: %s Gamma value not set. Using defaults: g0=1, q=1\n", m.Name)
		return 1, 1
	}
	return m.G0, m.Q
}

// Validate checks the parameters required for any Hugoniot construction.
func (m Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("material has no name")
	}
	if m.Rho0 <= 0 {
		return fmt.Errorf("material %s: rho0 must be positive, got %g", m.Name, m.Rho0)
	}
	if m.C0 <= 0 {
		return fmt.Errorf("material %s: c0 must be positive, got %g", m.Name, m.C0)
	}
	return nil
}

// Grid returns n particle-velocity samples spanning [0, span] m/s.
func Grid(n int, span float64) []float64 {
	return floats.Span(make([]float64, n), 0, span)
}
