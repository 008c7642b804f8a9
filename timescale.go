// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import "math"

// J2000 is noon on January 1, 2000 (Gregorian), the epoch of Julian
// centuries.
const J2000 Moment = 730120.5

// ZoneFromLongitude returns the offset of local mean time from universal
// time, as a fraction of a day, at longitude phi.
func ZoneFromLongitude(phi Angle) float64 { return float64(phi) / 360 }

// UniversalFromLocal converts local mean time at l to universal time.
func UniversalFromLocal(t Moment, l Location) Moment {
	return t - Moment(ZoneFromLongitude(l.Longitude))
}

// LocalFromUniversal converts universal time to local mean time at l.
func LocalFromUniversal(t Moment, l Location) Moment {
	return t + Moment(ZoneFromLongitude(l.Longitude))
}

// StandardFromUniversal converts universal time to the standard time of l.
func StandardFromUniversal(t Moment, l Location) Moment { return t + Moment(l.Zone) }

// UniversalFromStandard converts the standard time of l to universal time.
func UniversalFromStandard(t Moment, l Location) Moment { return t - Moment(l.Zone) }

// StandardFromLocal converts local mean time at l to its standard time.
func StandardFromLocal(t Moment, l Location) Moment {
	return StandardFromUniversal(UniversalFromLocal(t, l), l)
}

// LocalFromStandard converts the standard time of l to local mean time.
func LocalFromStandard(t Moment, l Location) Moment {
	return LocalFromUniversal(UniversalFromStandard(t, l), l)
}

// ApparentFromLocal converts local mean time to sundial time at l.
func ApparentFromLocal(t Moment, l Location) Moment {
	return t + Moment(EquationOfTime(UniversalFromLocal(t, l)))
}

// LocalFromApparent converts sundial time at l to local mean time.
func LocalFromApparent(t Moment, l Location) Moment {
	return t - Moment(EquationOfTime(UniversalFromLocal(t, l)))
}

// ApparentFromUniversal converts universal time to sundial time at l.
func ApparentFromUniversal(t Moment, l Location) Moment {
	return ApparentFromLocal(LocalFromUniversal(t, l), l)
}

// UniversalFromApparent converts sundial time at l to universal time.
func UniversalFromApparent(t Moment, l Location) Moment {
	return UniversalFromLocal(LocalFromApparent(t, l), l)
}

// Midnight returns the standard time of true (sundial) midnight at the
// start of date.
func Midnight(date int, l Location) Moment {
	return StandardFromLocal(LocalFromApparent(Moment(date), l), l)
}

// Midday returns the standard time of true (sundial) noon on date.
func Midday(date int, l Location) Moment {
	return StandardFromLocal(LocalFromApparent(Moment(date)+Moment(hr(12)), l), l)
}

// EphemerisCorrection returns dynamical time minus universal time, in days,
// for the Gregorian year containing t. Each year range has its own fitted
// formula; the fits do not meet exactly at the range boundaries.
func EphemerisCorrection(t Moment) float64 {
	year := GregorianYearFromFixed(t.Date())
	y := float64(year)
	switch {
	case year > 2150:
		return longTermCorrection(y)
	case year >= 2051:
		return sec(-20 + 32*math.Pow((y-1820)/100, 2) + 0.5628*(2150-y))
	case year >= 2006:
		return sec(Poly(y-2000, []float64{62.92, 0.32217, 0.005589}))
	case year >= 1987:
		return sec(Poly(y-2000, []float64{63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599}))
	case year >= 1900:
		return Poly(centuriesFrom1900(year), []float64{
			-0.00002, 0.000297, 0.025184, -0.181133, 0.553040, -0.861938, 0.677066, -0.212591,
		})
	case year >= 1800:
		return Poly(centuriesFrom1900(year), []float64{
			-0.000009, 0.003844, 0.083563, 0.865736, 4.867575, 15.845535,
			31.332267, 38.291999, 28.316289, 11.636204, 2.043794,
		})
	case year >= 1700:
		return sec(Poly(y-1700, []float64{8.118780842, -0.005092142, 0.003336121, -0.0000266484}))
	case year >= 1600:
		return sec(Poly(y-1600, []float64{120, -0.9808, -0.01532, 0.000140272128}))
	case year >= 500:
		return sec(Poly((y-1000)/100, []float64{
			1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073,
		}))
	case year > -500:
		return sec(Poly(y/100, []float64{
			10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521,
		}))
	}
	return longTermCorrection(y)
}

// longTermCorrection is the parabolic fit used outside the tabulated years.
func longTermCorrection(y float64) float64 {
	return sec(Poly((y-1820)/100, []float64{-20, 0, 32}))
}

// centuriesFrom1900 counts Julian centuries from January 1, 1900 to July 1
// of year.
func centuriesFrom1900(year int) float64 {
	return float64(FixedFromGregorian(year, 7, 1)-FixedFromGregorian(1900, 1, 1)) / 36525
}

// DynamicalFromUniversal converts universal time to dynamical time.
func DynamicalFromUniversal(t Moment) Moment { return t + Moment(EphemerisCorrection(t)) }

// UniversalFromDynamical converts dynamical time to universal time.
func UniversalFromDynamical(t Moment) Moment { return t - Moment(EphemerisCorrection(t)) }

// JulianCenturies returns the dynamical time of universal moment t in
// Julian centuries from J2000.
func JulianCenturies(t Moment) float64 {
	return float64(DynamicalFromUniversal(t)-J2000) / 36525
}

// Obliquity returns the mean obliquity of the ecliptic at t.
func Obliquity(t Moment) Angle {
	c := JulianCenturies(t)
	return AngleFromDMS(23, 26, 21.448) + Angle(Poly(c, []float64{
		0,
		float64(AngleFromDMS(0, 0, -46.8150)),
		float64(AngleFromDMS(0, 0, -0.00059)),
		float64(AngleFromDMS(0, 0, 0.001813)),
	}))
}

// EquationOfTime returns apparent minus mean solar time at t, as a fraction
// of a day, limited to half a day either way.
func EquationOfTime(t Moment) float64 {
	c := JulianCenturies(t)
	lambda := Angle(Poly(c, []float64{280.46645, 36000.76983, 0.0003032}))
	anomaly := Angle(Poly(c, []float64{357.52910, 35999.05030, -0.0001559, -0.00000048}))
	e := Poly(c, []float64{0.016708617, -0.000042037, -0.0000001236})
	y := math.Pow((Obliquity(t) / 2).Tan(), 2)
	eq := (y*(2*lambda).Sin() -
		2*e*anomaly.Sin() +
		4*e*y*anomaly.Sin()*(2*lambda).Cos() -
		0.5*y*y*(4*lambda).Sin() -
		1.25*e*e*(2*anomaly).Sin()) / (2 * math.Pi)
	return sign(eq) * math.Min(math.Abs(eq), hr(12))
}

// Declination returns the declination of the ecliptic position
// (lambda, beta) at t.
func Declination(t Moment, beta, lambda Angle) Angle {
	eps := Obliquity(t)
	return ArcSin(beta.Sin()*eps.Cos() + beta.Cos()*eps.Sin()*lambda.Sin())
}

// RightAscension returns the right ascension of the ecliptic position
// (lambda, beta) at t. It reports false at the celestial poles, where right
// ascension is undefined.
func RightAscension(t Moment, beta, lambda Angle) (Angle, bool) {
	eps := Obliquity(t)
	return ArcTan(lambda.Sin()*eps.Cos()-beta.Tan()*eps.Sin(), lambda.Cos())
}

// SiderealFromMoment returns the mean sidereal time at Greenwich at
// universal moment t.
func SiderealFromMoment(t Moment) Angle {
	c := float64(t-J2000) / 36525
	return Angle(Poly(c, []float64{280.46061837, 36525 * 360.98564736629, 0.000387933, -1.0 / 38710000})).Mod()
}

// altitude returns the geocentric altitude at l of a body at ecliptic
// position (lambda, beta) at universal moment t.
func altitude(t Moment, l Location, beta, lambda Angle) Angle {
	// At the poles right ascension is undefined and drops out of the result.
	alpha, _ := RightAscension(t, beta, lambda)
	delta := Declination(t, beta, lambda)
	h := (SiderealFromMoment(t) + l.Longitude - alpha).Mod()
	phi := l.Latitude
	a := ArcSin(phi.Sin()*delta.Sin() + phi.Cos()*delta.Cos()*h.Cos())
	return a.Mod3(-180, 180)
}
