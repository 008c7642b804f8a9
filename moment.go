// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const secondsPerDay = 24 * 60 * 60

// unixEpoch is the fixed date of 1970-01-01.
const unixEpoch = 719163

// Moment counts days, and fractions of a day, on the R.D. scale: January 1,
// 1 CE (proleptic Gregorian) begins at 1. Its integer part is a fixed date.
type Moment float64

// Date returns the fixed date containing m.
func (m Moment) Date() int { return int(math.Floor(float64(m))) }

// TimeOfDay returns the fraction of the day elapsed at m, in [0, 1).
func (m Moment) TimeOfDay() float64 { return mod(float64(m), 1) }

// JD returns the Julian day number of m.
func (m Moment) JD() float64 { return float64(m) + jdEpoch }

// Time returns m as an instant, treating m as universal time. It does not
// use julian.JDToTime, which switches to the Julian calendar before 1582.
func (m Moment) Time() time.Time {
	s := (float64(m) - unixEpoch) * secondsPerDay
	whole := math.Floor(s)
	return time.Unix(int64(whole), int64((s-whole)*1e9)).UTC().Round(time.Millisecond)
}

// MomentFromTime returns the universal moment of t.
func MomentFromTime(t time.Time) Moment { return MomentFromJD(julian.TimeToJD(t)) }

// MomentFromJD returns the moment of Julian day jd.
func MomentFromJD(jd float64) Moment { return Moment(jd - jdEpoch) }

// jdEpoch is the Julian day of moment 0.
const jdEpoch = 1721424.5

// hr returns x hours as a fraction of a day.
func hr(x float64) float64 { return x / 24 }

// mn returns x minutes as a fraction of a day.
func mn(x float64) float64 { return x / (24 * 60) }

// sec returns x seconds as a fraction of a day.
func sec(x float64) float64 { return x / secondsPerDay }

// Event is the outcome of an event computation: either the moment the
// event happens or no event at all. The zero Event is no event.
type Event struct {
	t  Moment
	ok bool
}

// NoEvent is returned when an event does not happen for the given input,
// such as sunrise during polar night.
var NoEvent = Event{}

// EventAt returns an event happening at t.
func EventAt(t Moment) Event { return Event{t: t, ok: true} }

// Moment returns the moment of the event and whether it happens.
func (e Event) Moment() (Moment, bool) { return e.t, e.ok }

// Occurs reports whether the event happens.
func (e Event) Occurs() bool { return e.ok }

// Or returns the moment of the event, or fallback when it does not happen.
func (e Event) Or(fallback Moment) Moment {
	if !e.ok {
		return fallback
	}
	return e.t
}

func (e Event) String() string {
	if !e.ok {
		return "no event"
	}
	return fmt.Sprintf("%.6f", float64(e.t))
}
