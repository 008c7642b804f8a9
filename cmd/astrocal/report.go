// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matthewdargan/astrocal"
)

const (
	signif = 1 << iota
	ptime
)

// evt is one line of a day's report. tim is universal time.
type evt struct {
	s    string
	tim  astrocal.Moment
	flag int
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	signifStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

var phases = []struct {
	name  string
	phase astrocal.Angle
}{
	{"New moon", astrocal.NewMoon},
	{"First quarter", astrocal.FirstQuarter},
	{"Full moon", astrocal.FullMoon},
	{"Last quarter", astrocal.LastQuarter},
}

var seasons = []struct {
	name   string
	season astrocal.Angle
}{
	{"Vernal equinox", astrocal.Spring},
	{"Summer solstice", astrocal.Summer},
	{"Autumnal equinox", astrocal.Autumn},
	{"Winter solstice", astrocal.Winter},
}

// twilight is the depression of the sun at astronomical twilight.
const twilight astrocal.Angle = 18

// dayEvents collects the events of the standard-time day date at l. It
// returns ctx's error as soon as ctx is done.
func dayEvents(ctx context.Context, date int, l astrocal.Location, crit astrocal.Criterion) ([]evt, error) {
	var events []evt
	standard := func(s string, f func(int, astrocal.Location) (astrocal.Event, error)) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e, err := f(date, l)
		if err != nil {
			return err
		}
		if t, ok := e.Moment(); ok {
			events = append(events, evt{s: s, tim: astrocal.UniversalFromStandard(t, l), flag: ptime})
		}
		return nil
	}
	dawn := func(d int, l astrocal.Location) (astrocal.Event, error) { return astrocal.Dawn(d, l, twilight) }
	dusk := func(d int, l astrocal.Location) (astrocal.Event, error) { return astrocal.Dusk(d, l, twilight) }
	for _, x := range []struct {
		s string
		f func(int, astrocal.Location) (astrocal.Event, error)
	}{
		{"Morning twilight at ", dawn},
		{"Sunrise at ", astrocal.Sunrise},
		{"Sunset at ", astrocal.Sunset},
		{"Evening twilight at ", dusk},
		{"Moonrise at ", astrocal.Moonrise},
		{"Moonset at ", astrocal.Moonset},
	} {
		if err := standard(x.s, x.f); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	begin := astrocal.UniversalFromStandard(astrocal.Moment(date), l)
	end := begin + 1
	for _, p := range phases {
		t, err := astrocal.LunarPhaseAtOrAfter(p.phase, begin)
		if err != nil {
			return nil, err
		}
		if t < end {
			events = append(events, evt{s: p.name + " at ", tim: t, flag: signif | ptime})
		}
	}
	for _, s := range seasons {
		t, err := astrocal.SolarLongitudeAfter(s.season, begin)
		if err != nil {
			return nil, err
		}
		if t < end {
			events = append(events, evt{s: s.name + " at ", tim: t, flag: signif | ptime})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	today, err := crit.Visible(date, l)
	if err != nil {
		return nil, err
	}
	if today {
		before, err := crit.Visible(date-1, l)
		if err != nil {
			return nil, err
		}
		if !before {
			s := fmt.Sprintf("Month begins: crescent seen the evening before (%s)", crit.Name())
			events = append(events, evt{s: s, tim: begin, flag: signif})
		}
	}
	return events, nil
}

// printDay writes the events of date sorted by time, significant events
// first, with times shown in zone.
func printDay(w io.Writer, date int, events []evt, zone *time.Location) {
	y, m, d := astrocal.GregorianFromFixed(date)
	day := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	fmt.Fprintln(w, headerStyle.Render(day.Format("Mon Jan 2 2006")))
	slices.SortFunc(events, func(e1, e2 evt) int {
		t1, t2 := e1.tim, e2.tim
		if e1.flag&signif > 0 {
			t1 -= 1000
		}
		if e2.flag&signif > 0 {
			t2 -= 1000
		}
		return cmp.Compare(t1, t2)
	})
	for _, e := range events {
		s := e.s
		if e.flag&ptime > 0 {
			s += e.tim.Time().In(zone).Format(time.TimeOnly + " MST")
		}
		if e.flag&signif > 0 {
			s = signifStyle.Render(s)
		}
		fmt.Fprintln(w, s)
	}
}
