// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/matthewdargan/astrocal"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// pos is the apparent place of a body at one moment.
type pos struct {
	ra       unit.RA
	dec, alt unit.Angle
}

func equatorial(t astrocal.Moment, beta, lambda astrocal.Angle) (unit.RA, unit.Angle) {
	ra, _ := astrocal.RightAscension(t, beta, lambda)
	return unit.RAFromDeg(float64(ra)), astrocal.Declination(t, beta, lambda).Unit()
}

// printPositions writes the places of the sun and moon at universal moment
// t as seen from l.
func printPositions(w io.Writer, t astrocal.Moment, l astrocal.Location) {
	lst := (astrocal.SiderealFromMoment(t) + l.Longitude).Mod()
	fmt.Fprintf(w, "%s %s lst %.0s lat %.0s long %.0s elev %4.0f\n",
		headerStyle.Render("positions"), t.Time().Format("2006-01-02 15:04:05 MST"),
		sexa.FmtRA(unit.RAFromDeg(float64(lst))),
		sexa.FmtAngle(l.Latitude.Unit()), sexa.FmtAngle(l.Longitude.Unit()), l.Elevation)

	var sun pos
	sun.ra, sun.dec = equatorial(t, 0, astrocal.SolarLongitude(t))
	sun.alt = astrocal.SolarAltitude(t, l).Unit()
	output(w, "The sun", sun)
	fmt.Fprintln(w)

	var moon pos
	moon.ra, moon.dec = equatorial(t, astrocal.LunarLatitude(t), astrocal.LunarLongitude(t))
	moon.alt = astrocal.ObservedLunarAltitude(t, l).Unit()
	output(w, "The moon", moon)
	semi := astrocal.LunarSemiDiameter(t, l).Unit().Sec()
	fmt.Fprintf(w, " %7.1f %10.0f %8.3f\n", semi, astrocal.LunarDistance(t)/1000, float64(astrocal.LunarPhase(t)))
}

func output(w io.Writer, n string, p pos) {
	fmt.Fprintf(w, "%10s %.1s %.0s %9.4f", n, sexa.FmtRA(p.ra), sexa.FmtAngle(p.dec), p.alt.Deg())
}
