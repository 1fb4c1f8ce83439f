// SPDX-License-Identifier: MIT
// Package: rivernet/segment
//
// types.go — policies, options, the Cut result and sentinel errors.

package segment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rivernet/network"
)

// Sentinel errors for segmentation.
var (
	// ErrInvalidPolicy indicates an unknown policy name.
	ErrInvalidPolicy = errors.New("segment: invalid policy")

	// ErrInvalidParameter indicates a malformed option value, e.g. a
	// non-positive segment length.
	ErrInvalidParameter = errors.New("segment: invalid parameter")

	// ErrInvalidLocation indicates a cut location outside the node set.
	ErrInvalidLocation = errors.New("segment: location not in network")
)

// Policy selects how the network is cut.
type Policy string

// The closed set of policies.
const (
	BetweenConfluences Policy = "between-confluences"
	FixedLength        Policy = "fixed-length-segments"
	DrainageBasins     Policy = "drainage-basins"
	ExplicitLocations  Policy = "explicit-locations"
)

// DefaultPolicy is used when no policy is given.
const DefaultPolicy = FixedLength

// DefaultLengthCells is the default segment length in cells.
const DefaultLengthCells = 10

// lengthEps absorbs rounding in accumulated flow distances so that a node
// exactly k·L upstream is not pushed into the previous piece.
const lengthEps = 1e-9

// Policies lists every valid policy.
func Policies() []Policy {
	return []Policy{BetweenConfluences, FixedLength, DrainageBasins, ExplicitLocations}
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	switch p {
	case BetweenConfluences, FixedLength, DrainageBasins, ExplicitLocations:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (p Policy) String() string { return string(p) }

// ParsePolicy resolves a policy name (case-insensitive, surrounding spaces
// ignored). An empty name yields DefaultPolicy.
//
// Errors:
//   - ErrInvalidPolicy for anything outside the closed set.
func ParsePolicy(name string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultPolicy, nil
	}
	p := Policy(key)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
	return p, nil
}

// Option configures Segment. Options irrelevant to the chosen policy are ignored.
type Option func(*Options)

// Options holds the resolved segmentation parameters.
type Options struct {
	// Length is the target segment length in flow-distance units; 0 means
	// DefaultLengthCells × cell size.
	Length float64

	// Locations are the node indices cut by ExplicitLocations.
	Locations []int

	err error
}

// WithLength sets the fixed segment length. L must be positive and finite;
// otherwise Segment fails with ErrInvalidParameter.
func WithLength(L float64) Option {
	return func(o *Options) {
		if !(L > 0) || math.IsInf(L, 0) {
			o.err = fmt.Errorf("%w: segment length must be positive and finite (%g)", ErrInvalidParameter, L)
			return
		}
		o.Length = L
	}
}

// WithLocations sets the explicit cut locations (appending to earlier calls).
func WithLocations(nodes ...int) Option {
	return func(o *Options) {
		o.Locations = append(o.Locations, nodes...)
	}
}

// Cut is a network derived from an original by removing links.
type Cut struct {
	// Network is the cut topology; its components are the aggregation groups.
	Network *network.Network

	// Origin[i] is the original node index of cut node i.
	Origin []int

	// Policy is the policy that produced the cut.
	Policy Policy
}
