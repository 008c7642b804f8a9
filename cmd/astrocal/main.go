// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Astrocal prints the solar and lunar events that calendars are reckoned by.
//
// Usage:
//
//	astrocal [-jpk] [-c ndays] [-C interval] [-d date] [-l "lat long elev zone"] [--place name] [--criterion name] [--env file]
//	astrocal months [--place name] [--criterion name] [year]
//
// Astrocal reports the events of one day, by default today, at the observing
// location: sunrise and sunset, morning and evening twilight, moonrise and
// moonset, the quarters of the moon, equinoxes and solstices, and the first
// evening on which the new crescent can be seen.
//
// The -j flag causes astrocal to print the Julian date.
//
// The -p flag causes astrocal to print the positions of the sun and moon at
// the given time instead of the day's events. For each, the name is followed
// by the right ascension, declination, altitude (degrees) and, for the moon,
// the semidiameter (arc seconds), distance (kilometers) and phase (degrees).
//
// The -k flag causes astrocal to print times in the standard time of the
// location (“kitchen clock”) instead of UTC.
//
// The -c flag causes astrocal to report for n (default 1) successive days.
//
// The -C flag is used with -c and sets the interval to d days.
//
// The -d flag causes astrocal to read the starting date, as RFC 3339 or
// YYYY-MM-DD in the location's standard time.
//
// The -l flag causes astrocal to read the north latitude, east longitude,
// elevation in meters and standard-time offset in hours of the observation
// point. If -l is missing, the --place flag or ASTROCAL_PLACE names a built-in
// location.
//
// The months command lists the dates in a Gregorian year on which a lunar
// month begins by first sighting of the crescent.
//
// Defaults are read from ASTROCAL_* environment variables and from .env.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/matthewdargan/astrocal"
	"github.com/matthewdargan/astrocal/internal/config"
	"github.com/spf13/cobra"
)

type options struct {
	envFile   string
	place     string
	loc       string
	criterion string
	julian    bool
	printPos  bool
	local     bool
	periods   int
	interval  int
	startDate string
}

// env is a resolved run: configuration with flags applied.
type env struct {
	cfg  *config.Config
	site astrocal.Location
	crit astrocal.Criterion
	log  *slog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "astrocal",
		Short:         "Print solar and lunar events for calendar reckoning",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, o)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.envFile, "env", "", "read defaults from this .env file")
	pf.StringVar(&o.place, "place", "", "use the named built-in location")
	pf.StringVarP(&o.loc, "location", "l", "", `read "latitude longitude elevation zone"`)
	pf.StringVar(&o.criterion, "criterion", "", "crescent visibility criterion")
	f := root.Flags()
	f.BoolVarP(&o.julian, "julian", "j", false, "print Julian date")
	f.BoolVarP(&o.printPos, "positions", "p", false, "print positions of the sun and moon at the given time")
	f.BoolVarP(&o.local, "local", "k", false, "print times in the location's standard time")
	f.IntVarP(&o.periods, "count", "c", 1, "report for n successive days")
	f.IntVarP(&o.interval, "interval", "C", 1, "used with -c, set the interval to d days")
	f.StringVarP(&o.startDate, "date", "d", "", "read start date")
	root.AddCommand(newMonthsCmd(o))
	return root
}

// resolve loads the configuration and applies the command-line overrides.
func (o *options) resolve() (*env, error) {
	var files []string
	if o.envFile != "" {
		files = append(files, o.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if o.place != "" {
		cfg.Place = o.place
		cfg.Location = ""
	}
	if o.loc != "" {
		cfg.Location = o.loc
	}
	if o.criterion != "" {
		cfg.Criterion = o.criterion
	}
	site, err := cfg.Site()
	if err != nil {
		return nil, err
	}
	crit, err := astrocal.CriterionByName(cfg.Criterion)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, site: site, crit: crit, log: newLogger(cfg.LogLevel)}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}

// parseDate reads an RFC 3339 instant, or a date taken as midnight in zone.
func parseDate(s string, zone *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q", s)
	}
	return t, nil
}

func runReport(cmd *cobra.Command, o *options) error {
	e, err := o.resolve()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "astrocal: %v\n", err)
		return err
	}
	if o.periods < 1 || o.interval < 1 {
		err := fmt.Errorf("count and interval must be positive")
		e.log.Error("invalid flags", "count", o.periods, "interval", o.interval)
		return err
	}
	t := time.Now().UTC()
	if o.startDate != "" {
		if t, err = parseDate(o.startDate, e.site.TimeZone()); err != nil {
			e.log.Error("invalid date", "err", err)
			return err
		}
	}
	m := astrocal.MomentFromTime(t)
	w := cmd.OutOrStdout()
	if o.julian {
		fmt.Fprintf(w, "Julian date: %.4f\n", m.JD())
	}
	if o.printPos {
		printPositions(w, m, e.site)
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
	defer cancel()
	start := astrocal.StandardFromUniversal(m, e.site).Date()
	e.log.Debug("report", "date", start, "days", o.periods, "interval", o.interval, "criterion", e.crit.Name())
	days, err := astrocal.ForEachDate(ctx, 0, o.periods-1, e.cfg.Workers, func(ctx context.Context, i int) ([]evt, error) {
		return dayEvents(ctx, start+i*o.interval, e.site, e.crit)
	})
	if err != nil {
		e.log.Error("report failed", "date", start, "err", err)
		return err
	}
	zone := time.UTC
	if o.local {
		zone = e.site.TimeZone()
	}
	for i, evs := range days {
		printDay(w, start+i*o.interval, evs, zone)
	}
	return nil
}
