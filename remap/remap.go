// Package remap aligns attribute arrays computed on a derived network (a cut
// network, or one basin re-indexed as a sub-network) with the node indexing
// of the original network.
//
// The correspondence is always taken from an explicit origin mapping, never
// from positional equality: origin[i] is the original index of derived node i.
// Several derived nodes may map to one original node; the lowest derived
// index wins.
package remap

import (
	"errors"
	"fmt"
)

// ErrRemapConsistency indicates a broken node correspondence: an origin index
// out of range, a values/origin length mismatch, or an original node that no
// derived node maps to. It always signals a defect upstream and is never
// recovered from.
var ErrRemapConsistency = errors.New("remap: inconsistent node correspondence")

// ToOriginal returns an array of length n with out[origin[i]] = values[i].
// It serves attribute arrays and label arrays alike.
//
// Errors:
//   - ErrRemapConsistency as described above.
//
// Complexity: O(n + len(values)).
func ToOriginal[T any](values []T, origin []int, n int) ([]T, error) {
	out, covered, err := scatter(values, origin, n)
	if err != nil {
		return nil, err
	}
	for g, ok := range covered {
		if !ok {
			return nil, fmt.Errorf("%w: original node %d has no counterpart", ErrRemapConsistency, g)
		}
	}
	return out, nil
}

// Into scatters values into dst (len(dst) is the original node count) and
// leaves entries without a counterpart untouched. It is the partial form of
// ToOriginal used when several derived networks together cover dst.
//
// Errors:
//   - ErrRemapConsistency for an out-of-range origin or length mismatch.
func Into(dst, values []float64, origin []int) error {
	if len(values) != len(origin) {
		return fmt.Errorf("%w: %d values for %d origin entries", ErrRemapConsistency, len(values), len(origin))
	}
	// a strictly ascending origin (every basin) cannot hold duplicates
	var written []bool
	for i := 1; i < len(origin); i++ {
		if origin[i] <= origin[i-1] {
			written = make([]bool, len(dst))
			break
		}
	}
	for i, g := range origin {
		if g < 0 || g >= len(dst) {
			return fmt.Errorf("%w: origin[%d] = %d with %d nodes", ErrRemapConsistency, i, g, len(dst))
		}
		if written != nil {
			if written[g] {
				continue
			}
			written[g] = true
		}
		dst[g] = values[i]
	}
	return nil
}

func scatter[T any](values []T, origin []int, n int) ([]T, []bool, error) {
	if len(values) != len(origin) {
		return nil, nil, fmt.Errorf("%w: %d values for %d origin entries", ErrRemapConsistency, len(values), len(origin))
	}
	out := make([]T, n)
	covered := make([]bool, n)
	for i, g := range origin {
		if g < 0 || g >= n {
			return nil, nil, fmt.Errorf("%w: origin[%d] = %d with %d nodes", ErrRemapConsistency, i, g, n)
		}
		if covered[g] {
			continue
		}
		covered[g] = true
		out[g] = values[i]
	}
	return out, covered, nil
}
