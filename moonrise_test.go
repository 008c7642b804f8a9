// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoonriseMoonset(t *testing.T) {
	tests := []struct {
		name string
		f    func(int, Location) (Event, error)
	}{
		{"moonrise", Moonrise},
		{"moonset", Moonset},
	}
	urbana, _ := Place("urbana")
	start := FixedFromGregorian(2024, 1, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n int
			missed := false
			for d := start; d < start+30; d++ {
				e, err := tt.f(d, urbana)
				require.NoError(t, err)
				m, ok := e.Moment()
				if !ok {
					assert.False(t, missed, "no %s on two days running, %d", tt.name, d)
					missed = true
					continue
				}
				missed = false
				n++
				assert.Equal(t, d, m.Date(), "%s on %d", tt.name, d)
				alt := ObservedLunarAltitude(UniversalFromStandard(m, urbana), urbana)
				assert.Less(t, math.Abs(float64(alt)), 0.3, "%s on %d", tt.name, d)
			}
			assert.GreaterOrEqual(t, n, 28)
			assert.LessOrEqual(t, n, 30)
		})
	}
}

func TestMoonriseDirection(t *testing.T) {
	mecca, _ := Place("mecca")
	d := FixedFromGregorian(2024, 5, 20)
	rise := mustMoment(t)(Moonrise(d, mecca))
	u := UniversalFromStandard(rise, mecca)
	assert.Greater(t, float64(ObservedLunarAltitude(u+Moment(mn(10)), mecca)), 0.0)
	assert.Less(t, float64(ObservedLunarAltitude(u-Moment(mn(10)), mecca)), 0.0)

	set := mustMoment(t)(Moonset(d, mecca))
	u = UniversalFromStandard(set, mecca)
	assert.Less(t, float64(ObservedLunarAltitude(u+Moment(mn(10)), mecca)), 0.0)
	assert.Greater(t, float64(ObservedLunarAltitude(u-Moment(mn(10)), mecca)), 0.0)
}
