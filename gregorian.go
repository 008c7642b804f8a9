// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// FixedFromGregorian returns the fixed date of a proleptic Gregorian date.
func FixedFromGregorian(year, month, day int) int {
	jd := julian.CalendarGregorianToJD(year, month, float64(day))
	return int(math.Round(jd - jdEpoch))
}

// GregorianFromFixed returns the proleptic Gregorian date of a fixed date.
// Dates before 1582 stay on the Gregorian calendar, which is why this does
// not go through julian.JDToCalendar.
func GregorianFromFixed(date int) (year, month, day int) {
	t := time.Unix(int64(date-unixEpoch)*secondsPerDay, 0).UTC()
	y, m, d := t.Date()
	return y, int(m), d
}

// GregorianYearFromFixed returns the proleptic Gregorian year of a fixed date.
func GregorianYearFromFixed(date int) int {
	y, _, _ := GregorianFromFixed(date)
	return y
}
