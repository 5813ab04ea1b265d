// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/mariogeiger/gas/math/lin"

// Collide computes post-collision velocities for two bodies given a
// contact normal n (need not be unit length), their pre-collision
// velocities va, vb, and their masses ma, mb (either of which may be
// +Inf). It conserves momentum and kinetic energy in the center-of-mass
// frame; an infinite mass behaves as an immovable wall.
//
// The algorithm:
//  1. if ma is infinite, swap the pair, recurse, and swap the result back
//     so the caller's ma is always finite going into step 2.
//  2. compute the frame velocity f: vb (the immovable body's velocity) if
//     mb is infinite, otherwise the center-of-mass velocity.
//  3. move into that frame, reflect va's normal component about n, and
//     set vb so that momentum is conserved in the frame (vb ends up zero
//     when mb is infinite).
//  4. move back out of the frame.
func Collide(n lin.V3, va lin.V3, ma float64, vb lin.V3, mb float64) (lin.V3, lin.V3) {
	if Infinite(ma) {
		vb2, va2 := Collide(n, vb, mb, va, ma)
		return va2, vb2
	}

	var f lin.V3
	if Infinite(mb) {
		f = vb
	} else {
		f = va.Scale(ma).Add(vb.Scale(mb)).Scale(1 / (ma + mb))
	}

	va = va.Sub(f)
	vb = vb.Sub(f)

	va = va.Sub(n.Scale(2 * n.Dot(va) / n.Dot(n)))
	vb = va.Scale(-ma / mb)

	va = va.Add(f)
	vb = vb.Add(f)
	return va, vb
}

// CollideBallBall returns the post-collision velocities for balls a and b
// colliding along the line of centers b.X - a.X.
func CollideBallBall(a, b Ball) (lin.V3, lin.V3) {
	n := b.X.Sub(a.X)
	return Collide(n, a.V, a.M, b.V, b.M)
}

// CollideBallWall returns the post-collision velocities for ball a and
// wall w colliding along the wall's normal.
func CollideBallWall(a Ball, w Wall) (lin.V3, lin.V3) {
	return Collide(w.Normal(), a.V, a.M, w.V, w.M)
}
