// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"fmt"
	"math"
)

// V3 is a 3 element vector. It is used for positions, velocities, and
// directions. V3 is a pure value type: all operations take their inputs
// as arguments and return a new V3, so callers never need to worry about
// aliasing or who owns a scratch vector.
type V3 struct {
	X float64
	Y float64
	Z float64
}

// NewV3 creates a new, all zero, 3D vector.
func NewV3() V3 { return V3{} }

// NewV3S creates a new 3D vector using the given scalars.
func NewV3S(x, y, z float64) V3 { return V3{x, y, z} }

// Eq (==) returns true if each element in v has the same value as the
// corresponding element in a.
func (v V3) Eq(a V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) almost-equals returns true if all the elements in v have
// essentially the same value as the corresponding elements in a. Used
// where a direct comparison is unlikely to return true due to floats.
func (v V3) Aeq(a V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add (+) returns the sum of v and a.
func (v V3) Add(a V3) V3 { return V3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v minus a.
func (v V3) Sub(a V3) V3 { return V3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Scale (*) returns v with each element multiplied by the scalar s.
func (v V3) Scale(s float64) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns the negation of v.
func (v V3) Neg() V3 { return V3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and a. Wikipedia states: "Algebraically,
// it is the sum of the products of the corresponding entries of the two
// sequences of numbers."
func (v V3) Dot(a V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product of v and a: a vector perpendicular to
// both v and a, following the right-hand rule.
func (v V3) Cross(a V3) V3 {
	return V3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v. Cheaper than Len when only
// relative magnitude matters.
func (v V3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v scaled to length 1. v is returned unchanged if its
// length is zero.
func (v V3) Unit() V3 {
	length := v.Len()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// Dump formats v for error messages and test failures.
func (v V3) Dump() string { return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z) }
