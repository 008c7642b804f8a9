// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/matthewdargan/astrocal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*3600)
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-20", want: time.Date(2024, 3, 20, 0, 0, 0, 0, zone)},
		{in: "2024-03-20T12:30:00Z", want: time.Date(2024, 3, 20, 12, 30, 0, 0, time.UTC)},
		{in: "20 March", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in, zone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()
	assert.True(t, newLogger("debug").Enabled(ctx, slog.LevelDebug))
	assert.False(t, newLogger("info").Enabled(ctx, slog.LevelDebug))
	assert.False(t, newLogger("error").Enabled(ctx, slog.LevelWarn))
	assert.True(t, newLogger("bogus").Enabled(ctx, slog.LevelInfo))
}

func TestPrintDay(t *testing.T) {
	date := astrocal.FixedFromGregorian(2024, 3, 20)
	m := astrocal.Moment(date)
	events := []evt{
		{s: "Sunset at ", tim: m + 0.75, flag: ptime},
		{s: "Sunrise at ", tim: m + 0.25, flag: ptime},
		{s: "Vernal equinox at ", tim: m + 0.5, flag: signif | ptime},
	}
	var buf bytes.Buffer
	printDay(&buf, date, events, time.UTC)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Wed Mar 20 2024")
	assert.Contains(t, lines[1], "Vernal equinox at 12:00:00 UTC")
	assert.Contains(t, lines[2], "Sunrise at 06:00:00 UTC")
	assert.Contains(t, lines[3], "Sunset at 18:00:00 UTC")
}

func TestDayEvents(t *testing.T) {
	greenwich, _ := astrocal.Place("greenwich")
	date := astrocal.FixedFromGregorian(2024, 3, 20)
	events, err := dayEvents(context.Background(), date, greenwich, astrocal.Shaukat{})
	require.NoError(t, err)
	var names []string
	for _, e := range events {
		names = append(names, e.s)
	}
	for _, want := range []string{"Morning twilight at ", "Sunrise at ", "Sunset at ", "Evening twilight at ", "Vernal equinox at "} {
		assert.Contains(t, names, want)
	}
	for _, e := range events {
		if e.flag&ptime > 0 {
			assert.Equal(t, date, e.tim.Date(), e.s)
		}
	}
}

func TestDayEventsCanceled(t *testing.T) {
	greenwich, _ := astrocal.Place("greenwich")
	date := astrocal.FixedFromGregorian(2024, 3, 20)
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, stop := context.WithTimeout(context.Background(), 0)
	defer stop()
	tests := []struct {
		name string
		ctx  context.Context
		want error
	}{
		{"canceled", canceled, context.Canceled},
		{"timeout", expired, context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := dayEvents(tt.ctx, date, greenwich, astrocal.Shaukat{})
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, events)
		})
	}
}

func TestRootCmd(t *testing.T) {
	t.Setenv("ASTROCAL_LOG_LEVEL", "error")
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-d", "2024-03-20", "--place", "greenwich", "-j"}, []string{"Julian date: 2460389.5000", "Sunrise at", "Vernal equinox at"}},
		{[]string{"-p", "-d", "2024-03-20T12:00:00Z", "--place", "mecca"}, []string{"positions", "The sun", "The moon"}},
		{[]string{"-k", "-c", "2", "-C", "7", "-d", "2024-03-20", "-l", "31.78 35.24 740 2"}, []string{"Wed Mar 20 2024", "Wed Mar 27 2024", "UTC+2"}},
		{[]string{"months", "2024", "--place", "mecca"}, []string{"2024 (shaukat)", "2024"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.ExecuteContext(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRootCmdErrors(t *testing.T) {
	t.Setenv("ASTROCAL_LOG_LEVEL", "error")
	for _, args := range [][]string{
		{"--place", "atlantis"},
		{"--criterion", "naked-eye"},
		{"-c", "0"},
		{"-d", "yesterday"},
		{"months", "MMXXIV"},
	} {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		assert.Error(t, cmd.ExecuteContext(context.Background()), "%v", args)
	}
}

func TestRootCmdTimeout(t *testing.T) {
	t.Setenv("ASTROCAL_LOG_LEVEL", "error")
	t.Setenv("ASTROCAL_TIMEOUT", "1ns")
	tests := []struct {
		name string
		args []string
	}{
		{"report", []string{"-c", "30", "-d", "2024-03-20", "--place", "mecca"}},
		{"months", []string{"months", "2024", "--place", "mecca"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)
			err := cmd.ExecuteContext(context.Background())
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		})
	}
}
