// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

// MaxSearchSteps bounds the integer searches and bisections. No search in
// this package needs more than a few dozen steps on valid input.
const MaxSearchSteps = 100000

// angularPrecision is the bracket width, in days, at which InvertAngular
// stops bisecting.
const angularPrecision = 1.0 / 10000

// LeastSatisfying returns the smallest k >= i for which p(k) holds.
func LeastSatisfying(i int, p func(int) bool) (int, error) {
	for k := i; k < i+MaxSearchSteps; k++ {
		if p(k) {
			return k, nil
		}
	}
	return 0, &SearchError{Op: "least satisfying", Steps: MaxSearchSteps}
}

// GreatestWhileTrue scans forward from i while p holds and returns the last
// index for which it held, or i-1 if p(i) is false.
func GreatestWhileTrue(i int, p func(int) bool) (int, error) {
	for k := i; k < i+MaxSearchSteps; k++ {
		if !p(k) {
			return k - 1, nil
		}
	}
	return 0, &SearchError{Op: "greatest while true", Steps: MaxSearchSteps}
}

// Bisect narrows [lo, hi] until stop(lo, hi) holds and returns the midpoint.
// At each step it keeps the left half when goLeft(mid) holds.
func Bisect(lo, hi float64, stop func(lo, hi float64) bool, goLeft func(x float64) bool) (float64, error) {
	if lo > hi {
		return 0, &DomainError{Op: "bisect", Reason: "lower bound above upper bound"}
	}
	for range MaxSearchSteps {
		mid := (lo + hi) / 2
		if stop(lo, hi) {
			return mid, nil
		}
		if goLeft(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return 0, &SearchError{Op: "bisect", Steps: MaxSearchSteps}
}

// InvertAngular finds the moment in [a, b] at which the angular function f,
// increasing modulo 360 over the interval, reaches target.
func InvertAngular(f func(Moment) Angle, target Angle, a, b Moment) (Moment, error) {
	goLeft := func(x float64) bool {
		return (f(Moment(x)) - target).Mod() < 180
	}
	if !goLeft(float64(b)) {
		return 0, &DomainError{Op: "invert angular", Reason: "target not reached within interval"}
	}
	x, err := Bisect(float64(a), float64(b), func(lo, hi float64) bool {
		return hi-lo <= angularPrecision
	}, goLeft)
	if err != nil {
		return 0, err
	}
	return Moment(x), nil
}

// Poly evaluates the polynomial with coefficients c, in ascending powers, at x.
func Poly(x float64, c []float64) float64 {
	var p float64
	for i := len(c) - 1; i >= 0; i-- {
		p = p*x + c[i]
	}
	return p
}

// SeriesSum sums term over every row of a coefficient table.
func SeriesSum[R any](rows []R, term func(R) float64) float64 {
	var s float64
	for _, r := range rows {
		s += term(r)
	}
	return s
}
