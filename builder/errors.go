// SPDX-License-Identifier: MIT
// Package: rivernet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter is smaller than the allowed
// minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or that the assembled
// successor array was rejected by network.New.
var ErrConstructFailed = errors.New("builder: construction failed")
