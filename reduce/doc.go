// Package reduce collapses a node attribute array to one value per group and
// broadcasts the group values back onto the nodes.
//
// What:
//
//   - Reducer: func([]float64) float64, any scalar statistic of a group.
//   - Built-ins: Mean (default), Median, Min, Max, StdDev, Percentile(p),
//     Sum, Range, Count, and the OmitNaN wrapper.
//   - ByName: resolves reducer names such as "mean", "std", "p90" or
//     "nanmedian" (configuration files and the CLI use these).
//   - ByLabel: groupwise reduction over components.Labels.
//
// Policy:
//
//   - A group without members reduces to NaN; the reducer is not called.
//   - A reducer panic is recovered and reported as ErrReducerPanic.
//   - Reducers receive a scratch slice they may reorder; it is never the
//     caller's input array.
//
// Complexity:
//
//   - ByLabel: O(N) plus the cost of the reducer on each group.
//   - Percentile/Median: O(m log m) per group of size m.
package reduce
