// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

import (
	"errors"
	"fmt"
)

// ErrSearchExhausted is matched by errors from searches that did not
// converge within their step bound.
var ErrSearchExhausted = errors.New("search exhausted")

// ErrDomain is matched by errors from calls that violate a precondition of
// the algorithm, such as an inverted bisection interval.
var ErrDomain = errors.New("domain precondition violated")

// SearchError reports a bounded search that gave up.
type SearchError struct {
	Op    string
	Steps int
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: no result after %d steps", e.Op, e.Steps)
}

func (e *SearchError) Is(target error) bool { return target == ErrSearchExhausted }

// DomainError reports inputs outside what an operation accepts.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }
