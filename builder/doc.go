// Package builder assembles river-network fixtures from small, deterministic
// topology constructors.
//
// Each Constructor appends one independent drainage basin to the network
// under construction, so Build(nil, Reach(4), Reach(6)) yields two disjoint
// basins of 4 and 6 nodes. Node indices are assigned in call order.
//
// Constructors:
//
//   - Reach(n):              an unbranched chain of n nodes.
//   - Junction(arms, down):  len(arms) tributaries joining at the head of a
//     downstream reach of length down.
//   - RandomTree(n):         a uniformly attached random tree (needs WithSeed/WithRand).
//
// Options:
//
//   - WithCellSize(cs):  cell spacing of the resulting network (default 1).
//   - WithSeed/WithRand: RNG for RandomTree.
//
// Errors:
//
//   - ErrTooFewNodes:     a size parameter below its minimum.
//   - ErrNeedRandSource:  RandomTree without an RNG.
//   - ErrConstructFailed: nil constructor or network validation failure.
package builder
