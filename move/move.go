// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package move drives a physics.Ball/physics.Wall population forward in
// time one collision event at a time. Move is a real-time simulation of
// real-world physics in the sense that it applies actual impulsive forces
// to bodies at the exact instant they make contact, rather than
// integrating approximate forces on a fixed tick.
//
// Bodies are added with AddBall/AddWall. Advancing the simulation is the
// responsibility of the calling application, which repeatedly calls
// Step(). Once Step() returns, the bodies' updated positions and
// velocities are available through Balls()/Walls().
//
// Package move is provided as part of the gas rigid-body simulator.
package move

import (
	"math"

	"github.com/mariogeiger/gas/math/lin"
	"github.com/mariogeiger/gas/physics"
)

// Simulation holds an ordered population of balls and walls and advances
// it one collision event at a time. The zero value is a simulation with
// no bodies.
type Simulation struct {
	balls []physics.Ball
	walls []physics.Wall
}

// New returns an empty Simulation.
func New() *Simulation { return &Simulation{} }

// AddBall appends a new ball to the simulation. Order is significant:
// bodies are referred to by index and that index is stable across Step
// calls.
func (s *Simulation) AddBall(position, velocity lin.V3, mass, radius float64) {
	s.balls = append(s.balls, physics.Ball{X: position, V: velocity, M: mass, R: radius})
}

// AddWall appends a new wall to the simulation. See AddBall for the index
// stability guarantee.
func (s *Simulation) AddWall(anchor, velocity, j, k lin.V3, mass float64) {
	s.walls = append(s.walls, physics.Wall{X: anchor, V: velocity, J: j, K: k, M: mass})
}

// Balls returns the current balls. The returned slice aliases the
// simulation's internal state and must not be retained across a Step call.
func (s *Simulation) Balls() []physics.Ball { return s.balls }

// Walls returns the current walls. See Balls for the aliasing caveat.
func (s *Simulation) Walls() []physics.Wall { return s.walls }

// event identifies one predicted contact, either a ball-ball pair
// (j >= 0) or a ball-wall pair (j < 0, w is the wall index).
type event struct {
	i, j int // ball indexes for a ball-ball event (j >= 0).
	w    int // wall index for a ball-wall event (w >= 0, j < 0).
}

// Step advances the simulation to the next collision event, or by dtMax,
// whichever comes first. It returns the elapsed time dt and the work done
// by moving walls on the balls during the step, m*(va'-va).vw summed over
// ball-wall events, which equals the balls' kinetic-energy gain from those
// contacts (for thermodynamic bookkeeping by the caller).
//
// Step scans every ball-ball and ball-wall pair for their time to
// contact, keeps the earliest one, advances every body ballistically by
// that amount of time, and then applies the collision response to every
// body involved in an event at that exact time — not just the first one
// found. The "strictly earlier time replaces, equal time appends" rule
// below is what makes simultaneous events (a head-on collision, or a ball
// bouncing between two walls at once) resolve correctly in a single step
// instead of picking one arbitrarily.
func (s *Simulation) Step(dtMax float64) (dt float64, work float64) {
	dt = dtMax
	var bb []event
	var bw []event

	for i := 0; i < len(s.balls); i++ {
		for j := i + 1; j < len(s.balls); j++ {
			t := physics.TimeToBallBall(s.balls[i], s.balls[j])
			switch {
			case math.IsInf(t, 1):
				// No contact predicted; never a candidate event.
			case t < dt:
				dt = t
				bb = bb[:0]
				bw = bw[:0]
				bb = append(bb, event{i: i, j: j, w: -1})
			case t == dt:
				bb = append(bb, event{i: i, j: j, w: -1})
			}
		}
		for w := range s.walls {
			t := physics.TimeToBallWall(s.balls[i], s.walls[w])
			switch {
			case math.IsInf(t, 1):
				// No contact predicted; never a candidate event.
			case t < dt:
				dt = t
				bb = bb[:0]
				bw = bw[:0]
				bw = append(bw, event{i: i, j: -1, w: w})
			case t == dt:
				bw = append(bw, event{i: i, j: -1, w: w})
			}
		}
	}

	if dt > 0 {
		for i := range s.balls {
			s.balls[i].X = s.balls[i].X.Add(s.balls[i].V.Scale(dt))
		}
		for w := range s.walls {
			s.walls[w].X = s.walls[w].X.Add(s.walls[w].V.Scale(dt))
		}
	}

	for _, e := range bb {
		a, b := s.balls[e.i], s.balls[e.j]
		va, vb := physics.CollideBallBall(a, b)
		s.balls[e.i].V, s.balls[e.j].V = va, vb
	}
	for _, e := range bw {
		a, w := s.balls[e.i], s.walls[e.w]
		va, vw := physics.CollideBallWall(a, w)
		work += a.M * va.Sub(a.V).Dot(w.V)
		s.balls[e.i].V = va
		s.walls[e.w].V = vw
	}

	return dt, work
}

// Collide reports whether balls a and b are currently touching or
// overlapping, independent of the ongoing simulation. Provided for
// one-off checks; it does not update any state.
func Collide(a, b physics.Ball) bool {
	r := a.R + b.R
	return a.X.Sub(b.X).LenSqr() <= r*r
}
