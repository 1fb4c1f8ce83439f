// Package dispatch runs a per-basin computation over every drainage basin of
// a river network concurrently and merges the results into one node array.
//
// What:
//
//   - Basins: splits a network into its weakly connected components, each
//     re-indexed as a standalone sub-network with an origin mapping.
//   - Run: executes a Task once per basin on an errgroup bounded by
//     WithWorkers, gathering each basin's input into a private slice and
//     scattering its output into a pre-allocated array by origin index.
//
// Concurrency:
//
//   - The network and the input array are only read and may be shared.
//   - Basin origins are disjoint, so concurrent scatters never alias and no
//     lock is taken; errgroup.Wait is the only join point.
//   - Output order is always by original node index, independent of task
//     completion order.
//
// Failure policy:
//
//   - FailFast (default): the first task error cancels the group context and
//     Run returns that error with no output.
//   - MarkMissing: a failing basin is logged and left as NaN. Context
//     cancellation and remapping inconsistencies still fail the call.
package dispatch
