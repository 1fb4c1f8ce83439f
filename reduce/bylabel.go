// SPDX-License-Identifier: MIT
// Package: rivernet/reduce
//
// bylabel.go — groupwise reduction and broadcast.

package reduce

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rivernet/components"
)

// Sentinel errors for groupwise reduction.
var (
	// ErrLengthMismatch indicates values and labels of different lengths.
	ErrLengthMismatch = errors.New("reduce: values and labels differ in length")

	// ErrLabelRange indicates a label outside 1..K.
	ErrLabelRange = errors.New("reduce: label out of range")

	// ErrReducerPanic indicates that the reducer panicked on a group.
	ErrReducerPanic = errors.New("reduce: reducer panicked")

	// ErrUnknownReducer indicates an unrecognised reducer name.
	ErrUnknownReducer = errors.New("reduce: unknown reducer")
)

// Result holds a groupwise reduction.
type Result struct {
	// Labels are the groups the values were reduced over.
	Labels components.Labels

	// Reduced[l-1] is the value of group l.
	Reduced []float64

	// Values[i] is Reduced[Labels.IDs[i]-1], one entry per node.
	Values []float64
}

// Value returns the reduced value of group l (1-based).
func (r *Result) Value(l int) float64 { return r.Reduced[l-1] }

// ByLabel reduces values group by group with f (Mean when f is nil) and
// broadcasts each group's value to its members. Groups without members get
// NaN without calling f.
//
// Errors:
//   - ErrLengthMismatch if len(values) != len(labels.IDs).
//   - ErrLabelRange if a label is outside 1..labels.K.
//   - ErrReducerPanic if f panics; the group label is in the message.
//
// Complexity: O(N + K) plus the reducer cost.
func ByLabel(values []float64, labels components.Labels, f Reducer) (*Result, error) {
	if len(values) != len(labels.IDs) {
		return nil, fmt.Errorf("%w: %d values, %d labels", ErrLengthMismatch, len(values), len(labels.IDs))
	}
	if f == nil {
		f = Mean
	}

	// counting sort of values by label into one scratch buffer
	start := make([]int, labels.K+1)
	for i, id := range labels.IDs {
		if id < 1 || id > labels.K {
			return nil, fmt.Errorf("%w: node %d has label %d, K=%d", ErrLabelRange, i, id, labels.K)
		}
		start[id]++
	}
	for l := 1; l <= labels.K; l++ {
		start[l] += start[l-1]
	}
	fill := make([]int, labels.K)
	copy(fill, start[:labels.K])
	scratch := make([]float64, len(values))
	for i, id := range labels.IDs {
		scratch[fill[id-1]] = values[i]
		fill[id-1]++
	}

	reduced := make([]float64, labels.K)
	for l := 0; l < labels.K; l++ {
		lo, hi := start[l], start[l+1]
		if lo == hi {
			reduced[l] = math.NaN()
			continue
		}
		v, err := apply(f, scratch[lo:hi:hi])
		if err != nil {
			return nil, fmt.Errorf("%w: group %d: %v", ErrReducerPanic, l+1, err)
		}
		reduced[l] = v
	}

	out := make([]float64, len(values))
	for i, id := range labels.IDs {
		out[i] = reduced[id-1]
	}

	return &Result{Labels: labels, Reduced: reduced, Values: out}, nil
}

// apply calls f, converting a panic into an error.
func apply(f Reducer, group []float64) (v float64, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("%v", e)
		}
	}()
	return f(group), nil
}
