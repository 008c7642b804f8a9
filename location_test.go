// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	l := NewLocation(31.78, 35.24, 740, 2)
	assert.InDelta(t, 2.0/24, l.Zone, 1e-12)
	require.NoError(t, l.Validate())
	tz := l.TimeZone()
	assert.Equal(t, "UTC+2", tz.String())
	_, off := J2000.Time().In(tz).Zone()
	assert.Equal(t, 2*3600, off)

	india := NewLocation(28.6, 77.2, 216, 5.5)
	_, off = J2000.Time().In(india.TimeZone()).Zone()
	assert.Equal(t, 5*3600+1800, off)
	assert.Equal(t, "UTC-6", NewLocation(40.1, -88.2, 225, -6).TimeZone().String())
}

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name string
		l    Location
	}{
		{"latitude", NewLocation(91, 0, 0, 0)},
		{"longitude", NewLocation(0, -181, 0, 0)},
		{"elevation", NewLocation(0, 0, -1, 0)},
		{"zone east", NewLocation(0, 0, 0, 15)},
		{"zone west", NewLocation(0, 0, 0, -13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.l.Validate())
		})
	}
}

func TestLocationValidateZones(t *testing.T) {
	tests := []struct {
		name string
		l    Location
	}{
		{"baker island", NewLocation(0.19, -176.48, 0, -12)},
		{"kolkata", NewLocation(22.57, 88.36, 9, 5.5)},
		{"apia", NewLocation(-13.83, -171.76, 2, 13)},
		{"kiritimati", NewLocation(1.87, -157.4, 0, 14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.l.Validate())
		})
	}
}

func TestPlace(t *testing.T) {
	names := PlaceNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "greenwich")
	for _, n := range names {
		l, ok := Place(n)
		require.True(t, ok, n)
		assert.NoError(t, l.Validate(), n)
	}
	mecca, ok := Place("Mecca")
	require.True(t, ok)
	assert.InDelta(t, 21.4233, float64(mecca.Latitude), 1e-4)
	_, ok = Place("atlantis")
	assert.False(t, ok)
}
