// Package aggregate is the primary entry point of rivernet: it replaces a
// noisy per-node attribute of a river network with piecewise-constant values,
// one value per group of nodes produced by a segmentation policy.
//
// Pipeline (serial):
//
//	Bind → Segment → Label → ByLabel → ToOriginal
//
// With WithSplit(true) the same pipeline runs independently on every drainage
// basin through the dispatch package, and the per-basin results are merged by
// original node index. Because no segment ever spans two basins, the split
// and serial paths produce identical output for every policy.
//
// Options follow the recorded-error convention: an invalid value passed to an
// option constructor is kept and reported by Aggregate or Segments, never by
// the constructor itself.
//
// Errors surfaced by this package (all errors.Is-comparable):
//
//   - ErrInvalidPolicy      unknown segmentation method.
//   - ErrIncompatibleInput  attribute source does not fit the network.
//   - ErrInvalidParameter   non-positive segment length or worker count, or
//     explicit-locations without any location.
//   - ErrInvalidLocation    explicit location outside the network.
//   - ErrRemapConsistency   broken node correspondence (a defect, never masked).
package aggregate
