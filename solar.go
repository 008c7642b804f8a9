// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import "fmt"

const (
	// MeanTropicalYear is the mean length of the tropical year in days.
	MeanTropicalYear = 365.242189
	// MeanSiderealYear is the mean length of the sidereal year in days.
	MeanSiderealYear = 365.25636
)

// Solar longitudes of the seasons.
const (
	Spring Angle = 0
	Summer Angle = 90
	Autumn Angle = 180
	Winter Angle = 270
)

// SolarLongitude returns the apparent longitude of the sun at universal
// moment t, in [0, 360).
func SolarLongitude(t Moment) Angle {
	c := JulianCenturies(t)
	s := SeriesSum(solarTerms, func(r solarTerm) float64 {
		return r.coef * Angle(r.phase+r.rate*c).Sin()
	})
	lambda := 282.7771834 + 36000.76953744*c + 0.000005729577951308232*s
	return (Angle(lambda) + Aberration(t) + Nutation(t)).Mod()
}

// Nutation returns the nutation in longitude at t.
func Nutation(t Moment) Angle {
	c := JulianCenturies(t)
	a := Angle(Poly(c, []float64{124.90, -1934.134, 0.002063}))
	b := Angle(Poly(c, []float64{201.11, 72001.5377, 0.00057}))
	return Angle(-0.004778*a.Sin() - 0.0003667*b.Sin())
}

// Aberration returns the aberration of the sun's longitude at t.
func Aberration(t Moment) Angle {
	c := JulianCenturies(t)
	return Angle(0.0000974*Angle(177.63+35999.01848*c).Cos() - 0.005575)
}

// SolarLongitudeAfter returns the first moment at or after t when the sun
// reaches longitude lambda.
func SolarLongitudeAfter(lambda Angle, t Moment) (Moment, error) {
	rate := MeanTropicalYear / 360
	tau := t + Moment(rate*float64((lambda-SolarLongitude(t)).Mod()))
	a := max(t, tau-5)
	b := tau + 5
	m, err := InvertAngular(SolarLongitude, lambda, a, b)
	if err != nil {
		return 0, fmt.Errorf("solar longitude %v after %v: %w", float64(lambda), float64(t), err)
	}
	return m, nil
}

// EstimatePriorSolarLongitude approximates the last moment at or before t
// when the sun was at longitude lambda. One correction step brings it
// within about a day.
func EstimatePriorSolarLongitude(lambda Angle, t Moment) Moment {
	rate := MeanTropicalYear / 360
	tau := t - Moment(rate*float64((SolarLongitude(t)-lambda).Mod()))
	delta := (SolarLongitude(tau) - lambda).Mod3(-180, 180)
	return min(t, tau-Moment(rate*float64(delta)))
}

// SeasonInGregorian returns the universal moment in the Gregorian year at
// which the sun reaches the longitude of season.
func SeasonInGregorian(season Angle, year int) (Moment, error) {
	return SolarLongitudeAfter(season, Moment(FixedFromGregorian(year, 1, 1)))
}

// SolarAltitude returns the geocentric altitude of the sun at l at
// universal moment t.
func SolarAltitude(t Moment, l Location) Angle {
	return altitude(t, l, 0, SolarLongitude(t))
}

// solarDeclination is the declination of the sun at universal moment t.
func solarDeclination(t Moment) Angle {
	return Declination(t, 0, SolarLongitude(t))
}
