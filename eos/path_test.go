package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gridPoint(hug *Curve, i int) Point {
	return Point{Up: hug.Up[i], P: hug.P[i], V: hug.V[i], E: hug.E[i]}
}

func TestTrivialReleaseIsHugoniot(t *testing.T) {
	hug, err := aluminum.Hugoniot(Grid(2001, 4000))
	assert.NoError(t, err)
	isen, err := aluminum.ReleaseIsentrope(hug, gridPoint(hug, 500), false, 2000)
	assert.NoError(t, err)
	assert.Equal(t, hug.Up, isen.Up)
	assert.Equal(t, hug.P, isen.P)
	assert.Equal(t, hug.V, isen.V)
	assert.Equal(t, hug.E, isen.E)
	for _, ok := range isen.Valid {
		assert.True(t, ok)
	}
}

func TestTrivialReshockMirrorsHugoniot(t *testing.T) {
	hug, err := aluminum.Hugoniot(Grid(2001, 4000))
	assert.NoError(t, err)
	start := gridPoint(hug, 500)
	rs, err := aluminum.ReshockHugoniot(hug, start, false)
	assert.NoError(t, err)
	for i := 0; i < hug.Len(); i++ {
		assert.InDelta(t, 2*start.Up-hug.Up[i], rs.Up[i], 1.e-9)
		if hug.P[i] >= start.P {
			// at and above the departure pressure the principal
			// Hugoniot state is reproduced
			assert.True(t, rs.Valid[i])
			assert.Equal(t, hug.P[i], rs.P[i])
			assert.Equal(t, hug.V[i], rs.V[i])
			assert.Equal(t, hug.E[i], rs.E[i])
		} else {
			assert.False(t, rs.Valid[i])
		}
	}
}

func TestMGReleaseSymmetricShortCircuit(t *testing.T) {
	hug, err := aluminum.Hugoniot(Grid(2001, 4000))
	assert.NoError(t, err)
	start := gridPoint(hug, 500) // up = 1000 = half of 2000: symmetric impact
	isen, err := aluminum.ReleaseIsentrope(hug, start, true, 2000)
	assert.NoError(t, err)
	// the first step in each direction pins the departure state
	assert.True(t, isen.Valid[500])
	assert.Equal(t, start.P, isen.P[500])
	assert.Equal(t, start.Up, isen.Up[500])
	assert.True(t, isen.Valid[501])
	assert.Equal(t, start.P, isen.P[501])
}

func TestMGReleaseExpansionBranch(t *testing.T) {
	hug, err := aluminum.Hugoniot(Grid(2001, 4000))
	assert.NoError(t, err)
	start := gridPoint(hug, 500)
	isen, err := aluminum.ReleaseIsentrope(hug, start, true, 2000)
	assert.NoError(t, err)
	// walking to larger volumes, pressure falls and particle velocity
	// falls with it (the reflected curve rises in up)
	for i := 499; i >= 1; i-- {
		if !isen.Valid[i] || !isen.Valid[i-1] {
			break
		}
		assert.True(t, isen.P[i-1] <= isen.P[i], "release pressure must fall, i=%d", i)
		assert.True(t, isen.Up[i-1] <= isen.Up[i], "release up must fall, i=%d", i)
	}
}

func TestMGReleaseUnrecoverableInputs(t *testing.T) {
	hug, err := aluminum.Hugoniot(Grid(2001, 4000))
	assert.NoError(t, err)
	start := gridPoint(hug, 500)
	// departure pressure out of Hugoniot range
	_, err = aluminum.ReleaseIsentrope(hug, Point{Up: start.Up, P: 1.e30, V: start.V, E: start.E}, true, 2000)
	assert.Error(t, err)
	// missing impact velocity in MG mode
	_, err = aluminum.ReleaseIsentrope(hug, start, true, 0)
	assert.Error(t, err)
	// no usable Hugoniot
	short, err := aluminum.Hugoniot(Grid(5, 100))
	assert.NoError(t, err)
	_, err = aluminum.ReleaseIsentrope(short, start, true, 2000)
	assert.Error(t, err)
}

func TestMGReshock(t *testing.T) {
	hug, err := aluminum.Hugoniot(Grid(2001, 4000))
	assert.NoError(t, err)
	start := gridPoint(hug, 500)
	rs, err := aluminum.ReshockHugoniot(hug, start, true)
	assert.NoError(t, err)
	var (
		nvalid int
		lastP  float64
	)
	for i := 0; i < rs.Len(); i++ {
		if !rs.Valid[i] {
			continue
		}
		assert.True(t, rs.P[i] >= start.P, "reshock stays at or above departure pressure, i=%d", i)
		assert.True(t, rs.Up[i] <= start.Up, "reshock decelerates the driver, i=%d", i)
		if nvalid > 0 {
			assert.True(t, rs.P[i] >= lastP, "rollover must be masked, i=%d", i)
		}
		lastP = rs.P[i]
		nvalid++
	}
	assert.True(t, nvalid > 100, "reshock curve should be broadly defined, got %d", nvalid)
	// everything below the departure pressure is masked
	for i := 0; i < 500; i++ {
		assert.False(t, rs.Valid[i])
	}
}
