// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"fmt"
	"math"
)

// MeanSynodicMonth is the mean time between new moons, in days.
const MeanSynodicMonth = 29.530588861

// Lunar phases, as elongations of the moon from the sun.
const (
	NewMoon      Angle = 0
	FirstQuarter Angle = 90
	FullMoon     Angle = 180
	LastQuarter  Angle = 270
)

// lunarArgs holds the fundamental arguments of the lunar theory at one
// moment.
type lunarArgs struct {
	c                                float64
	longitude, elongation, solarAnom Angle
	lunarAnom, node                  Angle
	e                                float64
}

func newLunarArgs(t Moment) lunarArgs {
	c := JulianCenturies(t)
	return lunarArgs{
		c:          c,
		longitude:  Angle(Poly(c, []float64{218.3164477, 481267.88123421, -0.0015786, 1.0 / 538841, -1.0 / 65194000})),
		elongation: Angle(Poly(c, []float64{297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868, -1.0 / 113065000})),
		solarAnom:  Angle(Poly(c, []float64{357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000})),
		lunarAnom:  Angle(Poly(c, []float64{134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699, -1.0 / 14712000})),
		node:       Angle(Poly(c, []float64{93.2720950, 483202.0175233, -0.0036539, -1.0 / 3526000, 1.0 / 863310000})),
		e:          Poly(c, []float64{1, -0.002516, -0.0000074}),
	}
}

func (a lunarArgs) angle(r lunarTerm) Angle {
	return Angle(r.d)*a.elongation + Angle(r.m)*a.solarAnom + Angle(r.mp)*a.lunarAnom + Angle(r.f)*a.node
}

// ecc scales a term by the eccentricity factor once per unit of the solar
// anomaly multiplier m.
func (a lunarArgs) ecc(m int) float64 {
	x := 1.0
	for m := abs(m); m > 0; m-- {
		x *= a.e
	}
	return x
}

func (a lunarArgs) sinx(r lunarTerm) float64 { return r.coef * a.ecc(r.m) * a.angle(r).Sin() }

func (a lunarArgs) cosx(r lunarTerm) float64 { return r.coef * a.ecc(r.m) * a.angle(r).Cos() }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// LunarLongitude returns the apparent geocentric longitude of the moon at
// universal moment t, in [0, 360).
func LunarLongitude(t Moment) Angle {
	a := newLunarArgs(t)
	correction := Angle(SeriesSum(lunarLongitudeTerms, a.sinx) / 1e6)
	venus := Angle(0.003958 * Angle(119.75+131.849*a.c).Sin())
	jupiter := Angle(0.000318 * Angle(53.09+479264.29*a.c).Sin())
	flatEarth := Angle(0.001962 * (a.longitude - a.node).Sin())
	return (a.longitude + correction + venus + jupiter + flatEarth + Nutation(t)).Mod()
}

// LunarLatitude returns the geocentric latitude of the moon at universal
// moment t.
func LunarLatitude(t Moment) Angle {
	a := newLunarArgs(t)
	beta := SeriesSum(lunarLatitudeTerms, a.sinx) / 1e6
	a1 := Angle(119.75 + 131.849*a.c)
	venus := 0.000175 * ((a1 + a.node).Sin() + (a1 - a.node).Sin())
	flatEarth := -0.002235*a.longitude.Sin() +
		0.000127*(a.longitude-a.lunarAnom).Sin() -
		0.000115*(a.longitude+a.lunarAnom).Sin()
	extra := 0.000382 * Angle(313.45+481266.484*a.c).Sin()
	return Angle(beta + venus + flatEarth + extra)
}

// LunarDistance returns the distance from the center of the earth to the
// center of the moon, in meters, at universal moment t.
func LunarDistance(t Moment) float64 {
	a := newLunarArgs(t)
	return 385000560 + SeriesSum(lunarDistanceTerms, a.cosx)
}

// NthNewMoon returns the universal moment of the nth new moon after (or
// before, for negative n) the new moon of January 11, 1 CE.
func NthNewMoon(n int) Moment {
	k := float64(n - 24724)
	c := k / 1236.85
	approx := J2000 + Moment(Poly(c, []float64{
		5.09766, MeanSynodicMonth * 1236.85, 0.00015437, -0.000000150, 0.00000000073,
	}))
	e := Poly(c, []float64{1, -0.002516, -0.0000074})
	solarAnom := Angle(Poly(c, []float64{2.5534, 1236.85 * 29.10535670, -0.0000014, -0.00000011}))
	lunarAnom := Angle(Poly(c, []float64{201.5643, 385.81693528 * 1236.85, 0.0107582, 0.00001238, -0.000000058}))
	moonArg := Angle(Poly(c, []float64{160.7108, 390.67050284 * 1236.85, -0.0016118, -0.00000227, 0.000000011}))
	omega := Angle(Poly(c, []float64{124.7746, -1.56375588 * 1236.85, 0.0020672, 0.00000215}))
	correction := -0.00017*omega.Sin() + SeriesSum(newMoonTerms, func(r newMoonTerm) float64 {
		x := r.coef * (Angle(r.solar)*solarAnom + Angle(r.lunar)*lunarAnom + Angle(r.mn)*moonArg).Sin()
		for i := r.e; i > 0; i-- {
			x *= e
		}
		return x
	})
	extra := 0.000325 * Angle(Poly(c, []float64{299.77, 132.8475848, -0.009173})).Sin()
	additional := SeriesSum(newMoonAddends, func(r newMoonAddend) float64 {
		return r.coef * Angle(r.phase+r.rate*k).Sin()
	})
	return UniversalFromDynamical(approx + Moment(correction+extra+additional))
}

// lunationNear estimates the index of the last new moon at or before t.
func lunationNear(t Moment) int {
	t0 := NthNewMoon(0)
	phi := LunarPhase(t)
	return int(math.Round(float64(t-t0)/MeanSynodicMonth - float64(phi)/360))
}

// NewMoonBefore returns the moment of the last new moon before t.
func NewMoonBefore(t Moment) (Moment, error) {
	n := lunationNear(t)
	k, err := GreatestWhileTrue(n-1, func(k int) bool { return NthNewMoon(k) < t })
	if err != nil {
		return 0, fmt.Errorf("new moon before %v: %w", float64(t), err)
	}
	return NthNewMoon(k), nil
}

// NewMoonAtOrAfter returns the moment of the first new moon at or after t.
func NewMoonAtOrAfter(t Moment) (Moment, error) {
	n := lunationNear(t)
	k, err := LeastSatisfying(n, func(k int) bool { return NthNewMoon(k) >= t })
	if err != nil {
		return 0, fmt.Errorf("new moon at or after %v: %w", float64(t), err)
	}
	return NthNewMoon(k), nil
}

// LunarPhase returns the elongation of the moon from the sun at t, in
// [0, 360). Near conjunction the elongation from the two longitude series
// can land on the wrong side of 0; when it disagrees by more than half a
// circle with the phase implied by the nearest new moon, the latter is used.
func LunarPhase(t Moment) Angle {
	phi := (LunarLongitude(t) - SolarLongitude(t)).Mod()
	t0 := NthNewMoon(0)
	n := int(math.Round(float64(t-t0) / MeanSynodicMonth))
	phi1 := Angle(360 * mod(float64(t-NthNewMoon(n))/MeanSynodicMonth, 1))
	if math.Abs(float64(phi-phi1)) > 180 {
		return phi1
	}
	return phi
}

// LunarPhaseAtOrBefore returns the last moment at or before t when the
// lunar phase was phi.
func LunarPhaseAtOrBefore(phi Angle, t Moment) (Moment, error) {
	tau := t - Moment(MeanSynodicMonth/360*float64((LunarPhase(t)-phi).Mod()))
	m, err := InvertAngular(LunarPhase, phi, tau-2, min(t, tau+2))
	if err != nil {
		return 0, fmt.Errorf("lunar phase %v at or before %v: %w", float64(phi), float64(t), err)
	}
	return m, nil
}

// LunarPhaseAtOrAfter returns the first moment at or after t when the lunar
// phase is phi.
func LunarPhaseAtOrAfter(phi Angle, t Moment) (Moment, error) {
	tau := t + Moment(MeanSynodicMonth/360*float64((phi-LunarPhase(t)).Mod()))
	m, err := InvertAngular(LunarPhase, phi, max(t, tau-2), tau+2)
	if err != nil {
		return 0, fmt.Errorf("lunar phase %v at or after %v: %w", float64(phi), float64(t), err)
	}
	return m, nil
}

// LunarAltitude returns the geocentric altitude of the moon at l at
// universal moment t, ignoring parallax.
func LunarAltitude(t Moment, l Location) Angle {
	return altitude(t, l, LunarLatitude(t), LunarLongitude(t))
}

// LunarParallax returns the parallax of the moon at l at universal moment t.
func LunarParallax(t Moment, l Location) Angle {
	geo := LunarAltitude(t, l)
	return ArcSin(6378140 / LunarDistance(t) * geo.Cos())
}

// TopocentricLunarAltitude returns the altitude of the moon as seen from the
// surface of the earth at l.
func TopocentricLunarAltitude(t Moment, l Location) Angle {
	return LunarAltitude(t, l) - LunarParallax(t, l)
}

// ObservedLunarAltitude returns the altitude of the upper limb of the moon
// at l, corrected for parallax and refraction.
func ObservedLunarAltitude(t Moment, l Location) Angle {
	return TopocentricLunarAltitude(t, l) + Refraction(l) + AngleFromDMS(0, 16, 0)
}

// LunarSemiDiameter returns the apparent radius of the moon's disk at l.
func LunarSemiDiameter(t Moment, l Location) Angle {
	h := LunarAltitude(t, l)
	p := LunarParallax(t, l)
	return Angle(0.27245 * float64(p) * (1 + h.Sin()*p.Sin()))
}

// ArcOfLight returns the angular separation of the centers of the sun and
// moon at t.
func ArcOfLight(t Moment) Angle {
	return ArcCos(LunarLatitude(t).Cos() * LunarPhase(t).Cos())
}
