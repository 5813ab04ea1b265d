// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mariogeiger/gas/math/lin"
)

func TestTimeToBallBallApproaching(t *testing.T) {
	a := Ball{X: lin.V3{X: -1}, V: lin.V3{X: 1}, M: 1, R: 0.1}
	b := Ball{X: lin.V3{X: 1}, V: lin.V3{}, M: 1, R: 0.1}
	tt := TimeToBallBall(a, b)
	// gap between surfaces is 2 - 0.2 = 1.8, closing at speed 1.
	assert.InDelta(t, 1.8, tt, 1e-9)
}

func TestTimeToBallBallReceding(t *testing.T) {
	a := Ball{X: lin.V3{X: -1}, V: lin.V3{X: -1}, M: 1, R: 0.1}
	b := Ball{X: lin.V3{X: 1}, V: lin.V3{X: 1}, M: 1, R: 0.1}
	assert.True(t, math.IsInf(TimeToBallBall(a, b), 1))
}

func TestTimeToBallBallMissesLineOfCenters(t *testing.T) {
	// Six balls equispaced on the x-axis, all moving with the same
	// velocity: none of them approach each other (scenario F).
	balls := make([]Ball, 6)
	for i := range balls {
		balls[i] = Ball{X: lin.V3{X: float64(i) * 2}, V: lin.V3{X: 1}, M: 1, R: 0.1}
	}
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			assert.True(t, math.IsInf(TimeToBallBall(balls[i], balls[j]), 1))
		}
	}
}

func TestTimeToBallBallNoDiscriminant(t *testing.T) {
	// Balls on parallel, non-intersecting tracks never collide even
	// though they approach in x.
	a := Ball{X: lin.V3{X: -1, Y: 5}, V: lin.V3{X: 1}, M: 1, R: 0.1}
	b := Ball{X: lin.V3{X: 1, Y: -5}, V: lin.V3{X: -1}, M: 1, R: 0.1}
	assert.True(t, math.IsInf(TimeToBallBall(a, b), 1))
}

func TestTimeToBallWallHitsPatch(t *testing.T) {
	ball := Ball{X: lin.V3{}, V: lin.V3{X: 1}, M: 1, R: 0.1}
	wall := Wall{
		X: lin.V3{X: 1, Y: -1, Z: -1},
		J: lin.V3{Y: 2},
		K: lin.V3{Z: 2},
		M: math.Inf(1),
	}
	tt := TimeToBallWall(ball, wall)
	assert.InDelta(t, 0.9, tt, 1e-9)
}

func TestTimeToBallWallMissesFinitePatch(t *testing.T) {
	// Ball heads toward the plane but well outside the parallelogram's
	// extent, so it should never register an event.
	ball := Ball{X: lin.V3{Y: 10}, V: lin.V3{X: 1}, M: 1, R: 0.1}
	wall := Wall{
		X: lin.V3{X: 1, Y: -1, Z: -1},
		J: lin.V3{Y: 2},
		K: lin.V3{Z: 2},
		M: math.Inf(1),
	}
	assert.True(t, math.IsInf(TimeToBallWall(ball, wall), 1))
}

func TestTimeToBallWallMovingWall(t *testing.T) {
	ball := Ball{X: lin.V3{}, V: lin.V3{}, M: 1, R: 0.1}
	wall := Wall{
		X: lin.V3{X: 1, Y: -1, Z: -1},
		V: lin.V3{X: -0.5},
		J: lin.V3{Y: 2},
		K: lin.V3{Z: 2},
		M: math.Inf(1),
	}
	tt := TimeToBallWall(ball, wall)
	assert.InDelta(t, 1.8, tt, 1e-9)
}

func TestTimeToBallWallRecedingWall(t *testing.T) {
	ball := Ball{X: lin.V3{}, V: lin.V3{}, M: 1, R: 0.1}
	wall := Wall{
		X: lin.V3{X: 1, Y: -1, Z: -1},
		V: lin.V3{X: 1},
		J: lin.V3{Y: 2},
		K: lin.V3{Z: 2},
		M: math.Inf(1),
	}
	assert.True(t, math.IsInf(TimeToBallWall(ball, wall), 1))
}
