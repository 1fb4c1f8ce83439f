// SPDX-License-Identifier: MIT
// Package: rivernet/reduce
//
// reducers.go — built-in group statistics.
//
// NaN policy: every built-in except Count propagates NaN; wrap a reducer in
// OmitNaN to ignore missing samples instead. Every built-in returns NaN for
// an empty input (Count returns 0).

package reduce

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reducer maps the values of one group to a single scalar.
type Reducer func(values []float64) float64

// Mean returns the arithmetic mean. A constant group returns its value
// exactly, so reducing an already reduced array is a fixed point.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	if constant(values) {
		return values[0]
	}
	return stat.Mean(values, nil)
}

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Sum(values)
}

// Min returns the smallest value.
func Min(values []float64) float64 {
	if len(values) == 0 || floats.HasNaN(values) {
		return math.NaN()
	}
	return floats.Min(values)
}

// Max returns the largest value.
func Max(values []float64) float64 {
	if len(values) == 0 || floats.HasNaN(values) {
		return math.NaN()
	}
	return floats.Max(values)
}

// Range returns Max - Min.
func Range(values []float64) float64 {
	return Max(values) - Min(values)
}

// Count returns the number of values.
func Count(values []float64) float64 {
	return float64(len(values))
}

// StdDev returns the sample standard deviation (n-1 denominator).
// A single value has deviation 0.
func StdDev(values []float64) float64 {
	switch len(values) {
	case 0:
		return math.NaN()
	case 1:
		if math.IsNaN(values[0]) {
			return math.NaN()
		}
		return 0
	}
	if constant(values) {
		return 0
	}
	return stat.StdDev(values, nil)
}

// constant reports whether every value equals the first. NaN never does.
func constant(values []float64) bool {
	for _, v := range values {
		if v != values[0] {
			return false
		}
	}
	return true
}

// Median returns the 50th percentile.
func Median(values []float64) float64 {
	return percentile(values, 50)
}

// Percentile returns a Reducer for the p-th percentile (0 ≤ p ≤ 100),
// interpolating linearly between closest ranks. Panics if p is outside
// [0, 100] or NaN.
func Percentile(p float64) Reducer {
	if !(p >= 0 && p <= 100) {
		panic(fmt.Sprintf("reduce: Percentile(%g) outside [0,100]", p))
	}
	return func(values []float64) float64 { return percentile(values, p) }
}

// percentile sorts a private copy, leaving values untouched. The rank is
// p·(n-1) between closest ranks; stat.Quantile's LinInterp places ranks at
// p·n instead, which would not reproduce the documented median.
func percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	s := make([]float64, n)
	copy(s, values)
	for _, v := range s {
		if math.IsNaN(v) {
			return math.NaN()
		}
	}
	sort.Float64s(s)

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return s[lo]
	}
	frac := rank - float64(lo)
	return s[lo] + frac*(s[hi]-s[lo])
}

// OmitNaN wraps r so that NaN inputs are dropped before reduction. A group
// holding only NaN values reduces as an empty group.
func OmitNaN(r Reducer) Reducer {
	return func(values []float64) float64 {
		kept := make([]float64, 0, len(values))
		for _, v := range values {
			if !math.IsNaN(v) {
				kept = append(kept, v)
			}
		}
		return r(kept)
	}
}

// builtins maps configuration names to reducers.
var builtins = map[string]Reducer{
	"mean":   Mean,
	"median": Median,
	"min":    Min,
	"max":    Max,
	"std":    StdDev,
	"sum":    Sum,
	"range":  Range,
	"count":  Count,
}

// ByName resolves a reducer name: one of mean, median, min, max, std, sum,
// range, count, or "p<percentile>" (e.g. "p90", "p2.5"). A "nan" prefix
// ("nanmean", "nanp90") wraps the result in OmitNaN. Names are
// case-insensitive.
//
// Errors:
//   - ErrUnknownReducer for anything else.
func ByName(name string) (Reducer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	omit := false
	if rest, ok := strings.CutPrefix(key, "nan"); ok && rest != "" {
		key, omit = rest, true
	}

	r, ok := builtins[key]
	if !ok {
		pct, isPct := strings.CutPrefix(key, "p")
		if !isPct {
			return nil, fmt.Errorf("%w: %q", ErrUnknownReducer, name)
		}
		p, err := strconv.ParseFloat(pct, 64)
		if err != nil || !(p >= 0 && p <= 100) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownReducer, name)
		}
		r = Percentile(p)
	}
	if omit {
		r = OmitNaN(r)
	}

	return r, nil
}
