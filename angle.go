// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"math"

	"github.com/soniakeys/unit"
)

// Angle is an angle in degrees. It is kept apart from Moment so that day
// fractions and degrees cannot be mixed without a conversion.
type Angle float64

// AngleFromDMS returns the angle d°m′s″. The sign of d applies to the whole
// angle.
func AngleFromDMS(d, m, s float64) Angle {
	a := math.Abs(d) + (m+s/60)/60
	if d < 0 {
		return Angle(-a)
	}
	return Angle(a)
}

// AngleFromUnit converts a soniakeys/unit angle.
func AngleFromUnit(a unit.Angle) Angle { return Angle(a.Deg()) }

// Unit returns a as a soniakeys/unit angle (radians).
func (a Angle) Unit() unit.Angle { return unit.AngleFromDeg(float64(a)) }

// Rad returns a in radians.
func (a Angle) Rad() float64 { return a.Unit().Rad() }

func (a Angle) Sin() float64 { return a.Unit().Sin() }

func (a Angle) Cos() float64 { return a.Unit().Cos() }

func (a Angle) Tan() float64 { return a.Unit().Tan() }

// Mod reduces a to [0, 360).
func (a Angle) Mod() Angle { return Angle(mod(float64(a), 360)) }

// Mod3 reduces a to [lo, hi).
func (a Angle) Mod3(lo, hi Angle) Angle {
	return Angle(mod3(float64(a), float64(lo), float64(hi)))
}

// ArcSin returns the arcsine of x in degrees.
func ArcSin(x float64) Angle { return AngleFromUnit(unit.Angle(math.Asin(x))) }

// ArcCos returns the arccosine of x in degrees.
func ArcCos(x float64) Angle { return AngleFromUnit(unit.Angle(math.Acos(x))) }

// ArcTan returns the angle in [0, 360) whose tangent is y/x, placed in the
// quadrant of (x, y). It reports false when x and y are both zero.
func ArcTan(y, x float64) (Angle, bool) {
	if x == 0 && y == 0 {
		return 0, false
	}
	if x == 0 {
		if y < 0 {
			return 270, true
		}
		return 90, true
	}
	a := AngleFromUnit(unit.Angle(math.Atan(y / x)))
	if x < 0 {
		a += 180
	}
	return a.Mod(), true
}

// mod is the floored remainder of x by y, in [0, y) for y > 0.
func mod(x, y float64) float64 {
	r := unit.PMod(x, y)
	if r >= y {
		return 0
	}
	return r
}

// mod3 reduces x to [lo, hi); lo == hi leaves x unchanged.
func mod3(x, lo, hi float64) float64 {
	if lo == hi {
		return x
	}
	return lo + mod(x-lo, hi-lo)
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
