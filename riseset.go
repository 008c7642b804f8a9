// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"fmt"
	"math"
)

// MaxDepressionIterations bounds the fixed-point iteration in
// MomentOfDepression. It normally settles in three or four steps.
const MaxDepressionIterations = 50

// earthRadius is the mean radius of the earth in meters.
const earthRadius = 6.372e6

// SineOffset returns the sine of the angle, measured as a time offset from
// 6h or 18h local time, at which the sun is alpha below the horizon at l on
// the day of local moment t. Values outside [-1, 1] mean the sun does not
// reach that depression.
func SineOffset(t Moment, l Location, alpha Angle) float64 {
	phi := l.Latitude
	delta := solarDeclination(UniversalFromLocal(t, l))
	return phi.Tan()*delta.Tan() + alpha.Sin()/(delta.Cos()*phi.Cos())
}

// approxMomentOfDepression returns the local moment near t at which the sun
// is alpha below the horizon, or no event.
func approxMomentOfDepression(t Moment, l Location, alpha Angle, morning bool) Event {
	try := SineOffset(t, l, alpha)
	date := Moment(t.Date())
	var alt Moment
	switch {
	case alpha < 0:
		alt = date + Moment(hr(12))
	case morning:
		alt = date
	default:
		alt = date + 1
	}
	value := try
	if math.Abs(try) > 1 {
		value = SineOffset(alt, l, alpha)
	}
	if math.Abs(value) > 1 {
		return NoEvent
	}
	offset := Moment(mod3(float64(ArcSin(value))/360, -0.5, 0.5))
	if morning {
		return EventAt(LocalFromApparent(date+Moment(hr(6))-offset, l))
	}
	return EventAt(LocalFromApparent(date+Moment(hr(18))+offset, l))
}

// MomentOfDepression refines approx, a local moment, to the local moment at
// which the sun is alpha below the horizon in the morning or evening.
func MomentOfDepression(approx Moment, l Location, alpha Angle, morning bool) (Event, error) {
	return momentOfDepression(approx, l, alpha, morning, MaxDepressionIterations)
}

func momentOfDepression(approx Moment, l Location, alpha Angle, morning bool, limit int) (Event, error) {
	for range limit {
		e := approxMomentOfDepression(approx, l, alpha, morning)
		t, ok := e.Moment()
		if !ok {
			return NoEvent, nil
		}
		if math.Abs(float64(approx-t)) < sec(30) {
			return e, nil
		}
		approx = t
	}
	return NoEvent, &SearchError{Op: "moment of depression", Steps: limit}
}

// Dawn returns the standard time in the morning of date at which the sun is
// alpha below the horizon at l.
func Dawn(date int, l Location, alpha Angle) (Event, error) {
	return depression(date, l, alpha, true)
}

// Dusk returns the standard time in the evening of date at which the sun is
// alpha below the horizon at l.
func Dusk(date int, l Location, alpha Angle) (Event, error) {
	return depression(date, l, alpha, false)
}

func depression(date int, l Location, alpha Angle, morning bool) (Event, error) {
	approx := Moment(date) + Moment(hr(18))
	if morning {
		approx = Moment(date) + Moment(hr(6))
	}
	e, err := MomentOfDepression(approx, l, alpha, morning)
	if err != nil {
		return NoEvent, fmt.Errorf("depression %v on %d: %w", float64(alpha), date, err)
	}
	t, ok := e.Moment()
	if !ok {
		return NoEvent, nil
	}
	return EventAt(StandardFromLocal(t, l)), nil
}

// Refraction returns the depression of the apparent horizon at l: average
// refraction plus the dip of the horizon for the observer's elevation.
func Refraction(l Location) Angle {
	h := max(0, l.Elevation)
	dip := ArcCos(earthRadius / (earthRadius + h))
	return AngleFromDMS(0, 34, 0) + dip + AngleFromDMS(0, 0, 19*math.Sqrt(h))
}

// sunDepression is the depression of the sun's center when its upper limb
// touches the apparent horizon at l.
func sunDepression(l Location) Angle {
	return Refraction(l) + AngleFromDMS(0, 16, 0)
}

// Sunrise returns the standard time of sunrise on date at l.
func Sunrise(date int, l Location) (Event, error) {
	return Dawn(date, l, sunDepression(l))
}

// Sunset returns the standard time of sunset on date at l.
func Sunset(date int, l Location) (Event, error) {
	return Dusk(date, l, sunDepression(l))
}

// DaytimeTemporalHour returns one twelfth of the time from sunrise to
// sunset on date, in days. It reports false when either event is missing.
func DaytimeTemporalHour(date int, l Location) (float64, bool, error) {
	rise, err := Sunrise(date, l)
	if err != nil {
		return 0, false, err
	}
	set, err := Sunset(date, l)
	if err != nil {
		return 0, false, err
	}
	r, ok1 := rise.Moment()
	s, ok2 := set.Moment()
	if !ok1 || !ok2 {
		return 0, false, nil
	}
	return float64(s-r) / 12, true, nil
}

// NighttimeTemporalHour returns one twelfth of the time from sunset on date
// to sunrise the next day, in days. It reports false when either event is
// missing.
func NighttimeTemporalHour(date int, l Location) (float64, bool, error) {
	set, err := Sunset(date, l)
	if err != nil {
		return 0, false, err
	}
	rise, err := Sunrise(date+1, l)
	if err != nil {
		return 0, false, err
	}
	s, ok1 := set.Moment()
	r, ok2 := rise.Moment()
	if !ok1 || !ok2 {
		return 0, false, nil
	}
	return float64(r-s) / 12, true, nil
}

// Moonlag returns the time, in days, from sunset to moonset on date at l.
// It reports false when there is no sunset. When the moon does not set that
// day the lag is a full day.
func Moonlag(date int, l Location) (float64, bool, error) {
	sun, err := Sunset(date, l)
	if err != nil {
		return 0, false, err
	}
	s, ok := sun.Moment()
	if !ok {
		return 0, false, nil
	}
	moon, err := Moonset(date, l)
	if err != nil {
		return 0, false, err
	}
	m, ok := moon.Moment()
	if !ok {
		return hr(24), true, nil
	}
	return float64(m - s), true, nil
}
