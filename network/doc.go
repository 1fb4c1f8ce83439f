// Package network models a flow-routed river network as an immutable,
// index-addressed forest: every node has at most one downstream successor
// and any number of upstream predecessors.
//
// What:
//
//   - Network: successor array plus derived predecessor lists, optional planar
//     node positions, the cell spacing, and an optional raster embedding.
//   - Topology queries: outlets, channel heads, confluences, reaches (maximal
//     unbranched chains between junctions), upstream-to-downstream order and
//     flow distance to the outlet.
//   - Derivations: Detach (drop selected successor links) and Subnetwork
//     (re-index a node subset). Both return new networks; the receiver is
//     never mutated, so a *Network may be shared freely between goroutines.
//
// Why:
//
//   - Arena storage (slices indexed by node id) avoids pointer cycles between
//     upstream and downstream nodes and keeps every traversal O(N).
//
// Complexity:
//
//   - New:          O(N) time and memory (includes cycle detection).
//   - Reaches:      O(N).
//   - TopoOrder:    O(N).
//   - FlowDistance: O(N).
//   - Detach:       O(N + len(nodes)).
//   - Subnetwork:   O(N).
//
// Errors:
//
//   - ErrNodeIndex:        successor or node index outside 0..N-1, self-links, duplicates.
//   - ErrCycle:            successor links form a cycle.
//   - ErrPositions:        position slices are not both of length N.
//   - ErrOptionViolation:  non-positive or non-finite cell size.
package network
