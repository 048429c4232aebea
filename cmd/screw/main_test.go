package main

import (
	"math"
	"path/filepath"
	"testing"

	"dasa.cc/ga/pga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Flag(t *testing.T) {
	var v vec3
	require.NoError(t, v.Set("1, -2.5,3"))
	assert.Equal(t, vec3{1, -2.5, 3}, v)
	assert.Equal(t, "1,-2.5,3", v.String())
	assert.Error(t, v.Set("1,2"))
	assert.Error(t, v.Set("1,x,2"))
}

func TestTrajectory(t *testing.T) {
	axis := pga.NewPoint(0, 0, 0).JoinPoint(pga.NewPoint(0, 0, 1))
	from := pga.NewMotor(1, 0, 0, 0, 0, 0, 0, 0)
	to := pga.NewMotorScrew(math.Pi, 4, axis)

	path := Trajectory(from, to, pga.NewPoint(1, 0, 0), 4)
	require.Len(t, path, 5)
	assert.True(t, path[0].ApproxEqual(pga.NewPoint(1, 0, 0), 1e-5), "%v", path[0])
	assert.True(t, path[4].ApproxEqual(pga.NewPoint(-1, 0, 4), 1e-4), "%v", path[4])
	for i, a := range path {
		// stays on the unit cylinder around the axis while rising evenly
		assert.InDelta(t, 1, math.Hypot(float64(a.X()), float64(a.Y())), 1e-4)
		assert.InDelta(t, float64(i), a.Z(), 1e-4)
	}
}

func TestPlot(t *testing.T) {
	path := []pga.Point{pga.NewPoint(0, 0, 0), pga.NewPoint(1, 1, 0), pga.NewPoint(2, 0, 0)}
	require.NoError(t, Plot(filepath.Join(t.TempDir(), "screw.png"), path))
}
