// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ForEachDate evaluates f for every fixed date in [from, to] on at most
// workers goroutines and returns the results in date order. The first error
// cancels the remaining dates; cancellation of ctx does the same.
func ForEachDate[T any](ctx context.Context, from, to, workers int, f func(ctx context.Context, date int) (T, error)) ([]T, error) {
	if to < from {
		return nil, &DomainError{Op: "for each date", Reason: "end date before start date"}
	}
	if workers < 1 {
		workers = 1
	}
	out := make([]T, to-from+1)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for d := from; d <= to; d++ {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v, err := f(gCtx, d)
			if err != nil {
				return fmt.Errorf("date %d: %w", d, err)
			}
			out[d-from] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
