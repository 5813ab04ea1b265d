// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "math"

// predict.go computes, in closed form, the time at which two bodies under
// uniform rectilinear motion will first touch. There is no broad phase and
// no iterative narrow phase (GJK/EPA): every shape pair here is a sphere
// against a sphere or a sphere against a finite planar patch, both of
// which reduce to a single quadratic (or linear) solve.

// TimeToBallBall returns the smallest t > 0 at which balls a and b will
// touch, given their current positions and velocities held constant. It
// returns +Inf if they are not on a collision course in finite forward
// time.
//
// Let x = b.X - a.X and v = b.V - a.V. Solving ‖x + v*t‖² = (ra+rb)² for
// the smaller positive root of the resulting quadratic in t gives the
// entry time.
func TimeToBallBall(a, b Ball) float64 {
	x := b.X.Sub(a.X)
	v := b.V.Sub(a.V)
	r := a.R + b.R

	xv := x.Dot(v)
	if xv >= 0 {
		// Not approaching along the line of centers.
		return math.Inf(1)
	}

	vv := v.Dot(v)
	dis := xv*xv - vv*(x.Dot(x)-r*r)
	if dis <= 0 {
		return math.Inf(1)
	}
	return (-xv - math.Sqrt(dis)) / vv
}

// TimeToBallWall returns the smallest t > 0 at which ball a will touch the
// finite parallelogram patch of wall w, given their current positions and
// velocities held constant. It returns +Inf if the ball is not crossing
// toward the plane, or if it would cross the plane outside the patch's
// [0,1]² (alpha, beta) bounds.
func TimeToBallWall(a Ball, w Wall) float64 {
	n := w.Normal()
	area := n.Len()
	nhat := n.Scale(1 / area)

	x := a.X.Sub(w.X)
	v := a.V.Sub(w.V)
	xn := x.Dot(nhat)
	vn := v.Dot(nhat)

	if xn*vn >= 0 {
		// Ball is not crossing toward the plane.
		return math.Inf(1)
	}

	t := -xn/vn - math.Abs(a.R/vn)
	p := x.Add(v.Scale(t))

	// Decompose p into parallelogram coordinates using the standard
	// cross-product inversion: p = alpha*J + beta*K + (p.nhat)*nhat, and
	// nhat = (J x K)/area, so
	//   alpha = -(p x nhat).K / area
	//   beta  =  (p x nhat).J / area
	pcn := p.Cross(nhat)
	alpha := -pcn.Dot(w.K) / area
	beta := pcn.Dot(w.J) / area

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return math.Inf(1)
	}
	return t
}
