// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// A Criterion decides whether the new crescent moon is first visible on the
// evening before date at l.
type Criterion interface {
	Visible(date int, l Location) (bool, error)
	Name() string
}

// Shaukat accepts a crescent with arc of light of at least 10.6° and
// altitude above 4.1° at the simple best viewing time.
type Shaukat struct{}

// Yallop applies Yallop's q-test at Bruin's best viewing time.
type Yallop struct{}

// Saudi accepts a crescent that sets after the sun.
type Saudi struct{}

// Babylonian accepts a crescent at least a day old that sets more than 48
// minutes after the sun.
type Babylonian struct{}

func (Shaukat) Name() string    { return "shaukat" }
func (Yallop) Name() string     { return "yallop" }
func (Saudi) Name() string      { return "saudi" }
func (Babylonian) Name() string { return "babylonian" }

var criteria = map[string]Criterion{
	"shaukat":    Shaukat{},
	"yallop":     Yallop{},
	"saudi":      Saudi{},
	"babylonian": Babylonian{},
}

// CriterionByName returns the criterion with the given name.
func CriterionByName(name string) (Criterion, error) {
	c, ok := criteria[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown visibility criterion %q", name)
	}
	return c, nil
}

// CriterionNames returns the names accepted by CriterionByName, sorted.
func CriterionNames() []string {
	names := make([]string, 0, len(criteria))
	for n := range criteria {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// young reports whether the moon lies between new and first quarter.
func young(phase Angle) bool { return NewMoon < phase && phase < FirstQuarter }

func (Shaukat) Visible(date int, l Location) (bool, error) {
	t, err := SimpleBestView(date-1, l)
	if err != nil {
		return false, err
	}
	arcl := ArcOfLight(t)
	return young(LunarPhase(t)) && 10.6 <= arcl && arcl <= 90 && LunarAltitude(t, l) > 4.1, nil
}

func (Yallop) Visible(date int, l Location) (bool, error) {
	t, err := BruinBestView(date-1, l)
	if err != nil {
		return false, err
	}
	return young(LunarPhase(t)) && float64(ArcOfVision(t, l)) > yallopLimit(t, l), nil
}

// yallopLimit is the least arc of vision at which Yallop's q-test passes for
// the crescent width at t, taken from the semi-diameter in degrees.
func yallopLimit(t Moment, l Location) float64 {
	w := float64(LunarSemiDiameter(t, l)) * (1 - ArcOfLight(t).Cos())
	const e = -0.14
	return Poly(w, []float64{11.8371, -6.3226, 0.7319, -0.1018}) + 10*e
}

func (Saudi) Visible(date int, l Location) (bool, error) {
	set, err := Sunset(date-1, l)
	if err != nil {
		return false, err
	}
	s, ok := set.Moment()
	if !ok {
		return false, nil
	}
	if !young(LunarPhase(UniversalFromStandard(s, l))) {
		return false, nil
	}
	lag, ok, err := Moonlag(date-1, l)
	if err != nil {
		return false, err
	}
	return ok && lag > 0, nil
}

func (Babylonian) Visible(date int, l Location) (bool, error) {
	set, err := Sunset(date-1, l)
	if err != nil {
		return false, err
	}
	s, ok := set.Moment()
	if !ok {
		return false, nil
	}
	t := UniversalFromStandard(s, l)
	if !young(LunarPhase(t)) {
		return false, nil
	}
	nm, err := NewMoonBefore(t)
	if err != nil {
		return false, err
	}
	if nm > t-1 {
		return false, nil
	}
	lag, ok, err := Moonlag(date-1, l)
	if err != nil {
		return false, err
	}
	return ok && lag > mn(48), nil
}

// SimpleBestView returns the universal time of dusk on date, with the sun
// 4.5° below the horizon, or the following midnight if there is no such
// dusk.
func SimpleBestView(date int, l Location) (Moment, error) {
	dark, err := Dusk(date, l, 4.5)
	if err != nil {
		return 0, err
	}
	return UniversalFromStandard(dark.Or(Moment(date+1)), l), nil
}

// BruinBestView returns the universal time on date that Bruin gives as
// best for sighting the crescent: four ninths of the way from sunset to
// moonset. It falls back to the following midnight if either is missing.
func BruinBestView(date int, l Location) (Moment, error) {
	sun, err := Sunset(date, l)
	if err != nil {
		return 0, err
	}
	moon, err := Moonset(date, l)
	if err != nil {
		return 0, err
	}
	best := Moment(date + 1)
	s, ok1 := sun.Moment()
	m, ok2 := moon.Moment()
	if ok1 && ok2 {
		best = 5.0/9*s + 4.0/9*m
	}
	return UniversalFromStandard(best, l), nil
}

// ArcOfVision returns the difference in geocentric altitude between the
// moon and the sun at l.
func ArcOfVision(t Moment, l Location) Angle {
	return LunarAltitude(t, l) - SolarAltitude(t, l)
}

// visibleOn adapts a criterion to the integer searches, which take plain
// predicates. The first error, or the end of ctx, stops the search by
// reporting a match and is kept in *errp.
func visibleOn(ctx context.Context, c Criterion, l Location, errp *error) func(int) bool {
	return func(d int) bool {
		if err := ctx.Err(); err != nil {
			*errp = err
			return true
		}
		ok, err := c.Visible(d, l)
		if err != nil {
			*errp = err
			return true
		}
		return ok
	}
}

// PhasisOnOrBefore returns the last date on or before date on which the new
// crescent is first visible at l according to c. The day-by-day search stops
// early with ctx's error when ctx is done.
func PhasisOnOrBefore(ctx context.Context, date int, l Location, c Criterion) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("phasis on or before %d: %w", date, err)
	}
	nm, err := LunarPhaseAtOrBefore(NewMoon, Moment(date))
	if err != nil {
		return 0, fmt.Errorf("phasis on or before %d: %w", date, err)
	}
	moon := nm.Date()
	age := date - moon
	tau := moon
	if age <= 3 {
		ok, err := c.Visible(date, l)
		if err != nil {
			return 0, fmt.Errorf("phasis on or before %d: %w", date, err)
		}
		if !ok {
			tau = moon - 30
		}
	}
	var serr error
	d, err := LeastSatisfying(tau, visibleOn(ctx, c, l, &serr))
	if err == nil {
		err = serr
	}
	if err != nil {
		return 0, fmt.Errorf("phasis on or before %d: %w", date, err)
	}
	return d, nil
}

// PhasisOnOrAfter returns the first date on or after date on which the new
// crescent is first visible at l according to c. Like PhasisOnOrBefore it
// gives up when ctx is done.
func PhasisOnOrAfter(ctx context.Context, date int, l Location, c Criterion) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("phasis on or after %d: %w", date, err)
	}
	nm, err := LunarPhaseAtOrBefore(NewMoon, Moment(date))
	if err != nil {
		return 0, fmt.Errorf("phasis on or after %d: %w", date, err)
	}
	moon := nm.Date()
	age := date - moon
	tau := date
	if age >= 4 {
		tau = moon + 29
	} else {
		ok, err := c.Visible(date-1, l)
		if err != nil {
			return 0, fmt.Errorf("phasis on or after %d: %w", date, err)
		}
		if ok {
			tau = moon + 29
		}
	}
	var serr error
	d, err := LeastSatisfying(tau, visibleOn(ctx, c, l, &serr))
	if err == nil {
		err = serr
	}
	if err != nil {
		return 0, fmt.Errorf("phasis on or after %d: %w", date, err)
	}
	return d, nil
}

// MonthStarts returns every date in the Gregorian year on which the new
// crescent is first visible at l according to c.
func MonthStarts(ctx context.Context, year int, l Location, c Criterion) ([]int, error) {
	start := FixedFromGregorian(year, 1, 1)
	end := FixedFromGregorian(year+1, 1, 1)
	var dates []int
	for d := start; ; {
		p, err := PhasisOnOrAfter(ctx, d, l, c)
		if err != nil {
			return nil, fmt.Errorf("month starts in %d: %w", year, err)
		}
		if p >= end {
			return dates, nil
		}
		dates = append(dates, p)
		d = p + 1
	}
}
