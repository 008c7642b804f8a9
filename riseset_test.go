// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"errors"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMoment returns a function giving the moment of an event that has to
// happen, so that it can take an event result directly.
func mustMoment(t *testing.T) func(Event, error) Moment {
	return func(e Event, err error) Moment {
		t.Helper()
		require.NoError(t, err)
		m, ok := e.Moment()
		require.True(t, ok, "no event")
		return m
	}
}

func TestRefraction(t *testing.T) {
	assert.InDelta(t, 34.0/60, float64(Refraction(NewLocation(0, 0, 0, 0))), 1e-12)
	greenwich, _ := Place("greenwich")
	assert.InDelta(t, 0.8226, float64(Refraction(greenwich)), 1e-3)
	assert.InDelta(t, 34.0/60+16.0/60, float64(sunDepression(NewLocation(10, 10, 0, 0))), 1e-12)
}

func TestSineOffset(t *testing.T) {
	equator := NewLocation(0, 0, 0, 0)
	m := Moment(FixedFromGregorian(2024, 3, 20)) + 0.25
	assert.InDelta(t, Angle(0.8).Sin(), SineOffset(m, equator, 0.8), 1e-3)
}

func TestSunriseSunset(t *testing.T) {
	greenwich, _ := Place("greenwich")
	for d := FixedFromGregorian(2024, 1, 1); d < FixedFromGregorian(2025, 1, 1); d += 13 {
		rise := mustMoment(t)(Sunrise(d, greenwich))
		set := mustMoment(t)(Sunset(d, greenwich))
		noon := Midday(d, greenwich)
		assert.Less(t, float64(rise), float64(noon))
		assert.Less(t, float64(noon), float64(set))
		assert.Equal(t, d, rise.Date())
		assert.Equal(t, d, set.Date())
		// Sunrise and sunset lie about equally far from true noon.
		assert.InDelta(t, float64(noon-rise), float64(set-noon), mn(3))
	}
}

// Sunrise and sunset agree with go-sunrise, which uses the same 50′
// depression for an observer at sea level.
func TestSunriseGoSunrise(t *testing.T) {
	sites := []struct {
		name string
		l    Location
		tol  time.Duration
	}{
		{"sea level", NewLocation(51.4777815, 0, 0, 0), 4 * time.Minute},
		{"greenwich", NewLocation(51.4777815, 0, 46.9, 0), 6 * time.Minute},
		{"urbana", NewLocation(40.1, -88.2, 225, -6), 6 * time.Minute},
		{"mecca", NewLocation(21.4233, 39.8233, 0, 3), 4 * time.Minute},
	}
	dates := []time.Time{
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 22, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC),
	}
	for _, s := range sites {
		t.Run(s.name, func(t *testing.T) {
			for _, day := range dates {
				wantRise, wantSet := sunrise.SunriseSunset(float64(s.l.Latitude), float64(s.l.Longitude), day.Year(), day.Month(), day.Day())
				d := FixedFromGregorian(day.Year(), int(day.Month()), day.Day())
				rise := UniversalFromStandard(mustMoment(t)(Sunrise(d, s.l)), s.l)
				set := UniversalFromStandard(mustMoment(t)(Sunset(d, s.l)), s.l)
				// go-sunrise reckons by the UTC date; compare the events
				// nearest to its answers.
				assert.WithinDuration(t, wantRise, nearestDay(rise, wantRise).Time(), s.tol, "%s sunrise", day.Format(time.DateOnly))
				assert.WithinDuration(t, wantSet, nearestDay(set, wantSet).Time(), s.tol, "%s sunset", day.Format(time.DateOnly))
			}
		})
	}
}

// nearestDay shifts m by whole days to lie within half a day of ref. Near
// the solstices sunrise moves by under a minute a day.
func nearestDay(m Moment, ref time.Time) Moment {
	r := MomentFromTime(ref)
	return m + Moment(float64(int(float64(r-m)+0.5+1000)-1000))
}

func TestPolarSun(t *testing.T) {
	longyearbyen := NewLocation(78.22, 15.65, 0, 1)
	for _, d := range []int{FixedFromGregorian(2024, 6, 21), FixedFromGregorian(2024, 12, 21)} {
		rise, err := Sunrise(d, longyearbyen)
		require.NoError(t, err)
		assert.False(t, rise.Occurs(), "sunrise on %d", d)
		set, err := Sunset(d, longyearbyen)
		require.NoError(t, err)
		assert.False(t, set.Occurs(), "sunset on %d", d)
		_, ok, err := DaytimeTemporalHour(d, longyearbyen)
		require.NoError(t, err)
		assert.False(t, ok)
		_, ok, err = Moonlag(d, longyearbyen)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	// The equinox sun still rises and sets.
	d := FixedFromGregorian(2024, 3, 20)
	mustMoment(t)(Sunrise(d, longyearbyen))
	mustMoment(t)(Sunset(d, longyearbyen))
}

func TestTwilight(t *testing.T) {
	jerusalem, _ := Place("jerusalem")
	d := FixedFromGregorian(2024, 3, 15)
	dawn := mustMoment(t)(Dawn(d, jerusalem, 18))
	rise := mustMoment(t)(Sunrise(d, jerusalem))
	set := mustMoment(t)(Sunset(d, jerusalem))
	dusk := mustMoment(t)(Dusk(d, jerusalem, 18))
	assert.True(t, dawn < rise && rise < set && set < dusk)
	// Astronomical twilight at 32°N near the equinox lasts about 80 minutes.
	assert.InDelta(t, mn(80), float64(rise-dawn), mn(10))
	assert.InDelta(t, mn(80), float64(dusk-set), mn(10))

	// The sun is 18° down at dusk.
	assert.InDelta(t, -18, float64(SolarAltitude(UniversalFromStandard(dusk, jerusalem), jerusalem)), 0.1)

	// Polar summer never gets dark.
	e, err := Dusk(FixedFromGregorian(2024, 6, 21), NewLocation(60, 0, 0, 0), 18)
	require.NoError(t, err)
	assert.False(t, e.Occurs())
}

func TestTemporalHours(t *testing.T) {
	urbana, _ := Place("urbana")
	for _, d := range []int{FixedFromGregorian(2024, 1, 10), FixedFromGregorian(2024, 7, 10)} {
		day, ok, err := DaytimeTemporalHour(d, urbana)
		require.NoError(t, err)
		require.True(t, ok)
		night, ok, err := NighttimeTemporalHour(d, urbana)
		require.NoError(t, err)
		require.True(t, ok)
		// Twelve hours of each span a day, sunrise to sunrise.
		assert.InDelta(t, 1, 12*(day+night), mn(2))
	}
	winter, _, _ := DaytimeTemporalHour(FixedFromGregorian(2024, 1, 10), urbana)
	summer, _, _ := DaytimeTemporalHour(FixedFromGregorian(2024, 7, 10), urbana)
	assert.Less(t, winter, hr(1))
	assert.Greater(t, summer, hr(1))
}

func TestMomentOfDepressionBound(t *testing.T) {
	greenwich, _ := Place("greenwich")
	e, err := MomentOfDepression(Moment(FixedFromGregorian(2024, 5, 1))+0.25, greenwich, 0.8, true)
	require.NoError(t, err)
	assert.True(t, e.Occurs())
}

func TestMomentOfDepressionExhausted(t *testing.T) {
	greenwich, _ := Place("greenwich")
	longyearbyen := NewLocation(78.22, 15.65, 0, 1)
	// Local midnight is hours from sunrise, so one step never settles.
	midnight := Moment(FixedFromGregorian(2024, 5, 1))
	tests := []struct {
		name      string
		l         Location
		approx    Moment
		limit     int
		exhausted bool
		occurs    bool
	}{
		{"no steps", greenwich, midnight, 0, true, false},
		{"one step", greenwich, midnight, 1, true, false},
		{"full budget", greenwich, midnight, MaxDepressionIterations, false, true},
		{"midnight sun", longyearbyen, Moment(FixedFromGregorian(2024, 6, 21)), 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := momentOfDepression(tt.approx, tt.l, 0.8, true, tt.limit)
			assert.Equal(t, tt.occurs, e.Occurs())
			if !tt.exhausted {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrSearchExhausted)
			var se *SearchError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.limit, se.Steps)
			assert.Equal(t, "moment of depression", se.Op)
		})
	}
}
