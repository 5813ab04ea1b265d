// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package physics provides the geometry, collision prediction, and
// collision response for an event-driven hard-sphere simulator: balls
// (moving spheres) and walls (finite planar parallelogram patches) that
// exchange momentum through perfectly elastic impulsive contacts.
//
// Package physics is provided as part of the gas rigid-body simulator.
package physics

import (
	"math"

	"github.com/mariogeiger/gas/math/lin"
)

// Ball is a moving hard sphere. Position and velocity are updated by the
// evolver; nothing else in this package mutates a Ball directly.
type Ball struct {
	X lin.V3  // Center position.
	V lin.V3  // Velocity.
	M float64 // Mass. May be +Inf for an immovable ball.
	R float64 // Radius. Expected to be > 0.
}

// Wall is a finite planar parallelogram patch: the locus
// {X + a*J + b*K : a,b in [0,1]}. It may translate rigidly with velocity
// V. Typically given infinite mass so that balls bounce off it without
// moving it, but a finite mass lets a ball do work on the wall.
type Wall struct {
	X lin.V3  // Anchor corner of the parallelogram.
	V lin.V3  // Velocity (rigid translation of the whole patch).
	J lin.V3  // First in-plane edge vector.
	K lin.V3  // Second in-plane edge vector.
	M float64 // Mass. May be +Inf for an immovable wall.
}

// Normal returns the wall's un-normalized normal, J×K. Its
// orientation is whichever sign J×K produces; the predictor and the
// responder both only need this to be consistent, not a particular sign.
func (w Wall) Normal() lin.V3 { return w.J.Cross(w.K) }

// Infinite reports whether m represents an immovable mass, encoded per
// IEEE-754 as +Inf.
func Infinite(m float64) bool { return math.IsInf(m, 1) }
