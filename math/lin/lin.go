// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the linear math this simulator needs: 3-element
// vectors and the scalar helpers that go with them. Unlike a general
// purpose 3D math library, lin deliberately has no matrices, quaternions,
// or transforms — this simulator has no rotation or angular momentum, so
// there is nothing for them to do.
//
// Package lin is provided as part of the gas rigid-body simulator.
package lin

import "math"

// Epsilon is used to distinguish when a float is close enough to a
// number that the difference no longer matters.
const Epsilon float64 = 1e-9

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// AeqZ (~=) almost-equals-zero returns true if x is close enough to zero
// that it makes no difference.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }
