// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"fmt"
	"math"
)

// Moonrise returns the standard time on date at which the upper limb of the
// moon rises at l, or no event if the moon does not rise that day.
func Moonrise(date int, l Location) (Event, error) {
	e, err := moonCrossing(date, l, true)
	if err != nil {
		return NoEvent, fmt.Errorf("moonrise on %d: %w", date, err)
	}
	return e, nil
}

// Moonset returns the standard time on date at which the upper limb of the
// moon sets at l, or no event if the moon does not set that day.
func Moonset(date int, l Location) (Event, error) {
	e, err := moonCrossing(date, l, false)
	if err != nil {
		return NoEvent, fmt.Errorf("moonset on %d: %w", date, err)
	}
	return e, nil
}

// moonCrossing finds the moment on date at which the moon's observed
// altitude crosses zero, upward for a rise and downward for a set.
//
// The first guess comes from the moon's altitude at the start of the day,
// its phase and the latitude, and is refined by bisection over six hours
// either side. If that window does not hold a crossing inside the day, the
// day is scanned hour by hour.
func moonCrossing(date int, l Location, rise bool) (Event, error) {
	t := UniversalFromStandard(Moment(date), l)
	end := t + 1
	above := func(x Moment) bool { return ObservedLunarAltitude(x, l) > 0 }
	crosses := func(lo, hi Moment) bool {
		if rise {
			return !above(lo) && above(hi)
		}
		return above(lo) && !above(hi)
	}
	// For a rise the crossing is left of any moment the moon is up; for a
	// set, left of any moment it is down.
	goLeft := func(x float64) bool { return above(Moment(x)) == rise }
	stop := func(lo, hi float64) bool { return hi-lo < mn(1) }

	approx := approxMoonCrossing(t, l, rise)
	lo, hi := approx-Moment(hr(6)), approx+Moment(hr(6))
	if crosses(lo, hi) {
		x, err := Bisect(float64(lo), float64(hi), stop, goLeft)
		if err != nil {
			return NoEvent, err
		}
		if m := Moment(x); m >= t && m < end {
			return EventAt(StandardFromUniversal(m, l)), nil
		}
	}
	for h := range 24 {
		lo := t + Moment(hr(float64(h)))
		hi := lo + Moment(hr(1))
		if !crosses(lo, hi) {
			continue
		}
		x, err := Bisect(float64(lo), float64(hi), stop, goLeft)
		if err != nil {
			return NoEvent, err
		}
		return EventAt(StandardFromUniversal(Moment(x), l)), nil
	}
	return NoEvent, nil
}

// approxMoonCrossing guesses the universal moment of the next rise or set
// after t from how far the moon is above or below the horizon at t. The
// moon's altitude changes by roughly 4(90-|latitude|) degrees a day.
func approxMoonCrossing(t Moment, l Location, rise bool) Moment {
	waning := LunarPhase(t) > 180
	alt := ObservedLunarAltitude(t, l)
	offset := Moment(float64(alt) / (4 * (90 - math.Abs(float64(l.Latitude)))))
	switch {
	case rise && offset > 0:
		return t + 1 - offset
	case rise && waning:
		return t - offset
	case rise:
		return t + Moment(hr(12)) + offset
	case offset > 0:
		return t + offset
	case waning:
		return t + Moment(hr(12)) - offset
	}
	return t + 1 + offset
}
