// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astrocal computes the astronomical events that observational
// calendars are built on: the positions of the sun and moon, solstices and
// equinoxes, new moons and lunar phases, sunrise, sunset and twilight,
// moonrise and moonset, and the first visibility of the crescent moon.
//
// Time is a Moment, a count of days from midnight at the start of January 1,
// 1 CE (proleptic Gregorian); its integer part is a fixed date. Functions
// taking a Moment expect universal time unless documented otherwise. Rise,
// set and twilight functions take a fixed date and return the standard time
// of the Location, as an Event that may report that nothing happens, such as
// sunrise during polar night.
//
// Angles are Angle values in degrees. Searches are iterative and bounded by
// MaxSearchSteps; a search that gives up returns an error matching
// ErrSearchExhausted, and a call outside an algorithm's assumptions returns
// one matching ErrDomain.
//
// All functions are pure and safe for concurrent use. ForEachDate spreads a
// per-date computation over several goroutines.
package astrocal
