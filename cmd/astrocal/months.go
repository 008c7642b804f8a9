// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/matthewdargan/astrocal"
	"github.com/spf13/cobra"
)

func newMonthsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "months [year]",
		Short: "List the dates that begin lunar months by crescent sighting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.resolve()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "astrocal: %v\n", err)
				return err
			}
			year := time.Now().In(e.site.TimeZone()).Year()
			if len(args) == 1 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					e.log.Error("invalid year", "year", args[0])
					return fmt.Errorf("invalid year %q", args[0])
				}
			}
			e.log.Debug("months", "year", year, "criterion", e.crit.Name())
			ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
			defer cancel()
			dates, err := astrocal.MonthStarts(ctx, year, e.site, e.crit)
			if err != nil {
				e.log.Error("month search failed", "year", year, "err", err)
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d (%s)", year, e.crit.Name())))
			for _, d := range dates {
				y, m, dd := astrocal.GregorianFromFixed(d)
				fmt.Fprintln(w, time.Date(y, time.Month(m), dd, 0, 0, 0, 0, time.UTC).Format("Mon Jan 2 2006"))
			}
			return nil
		},
	}
}
