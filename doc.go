// Package rivernet turns a noisy value attached to every node of a river
// network (channel steepness, elevation, width...) into piecewise-constant
// values along the network, while keeping its topology intact.
//
// 🚀 What is rivernet?
//
//	An in-memory aggregation engine for flow-routed drainage networks:
//		• Network:      immutable successor/predecessor arena with positions & grid
//		• Attributes:   pre-bound arrays or rasters sampled at the nodes
//		• Segmenting:   between confluences, fixed length, drainage basins, cut points
//		• Reduction:    mean, median, min, max, std, percentiles or any closure
//		• Parallelism:  optional per-basin fan-out on an errgroup
//
// ✨ Why rivernet?
//
//   - Index-addressed arena, no pointer graphs
//   - Every derived network carries an explicit origin mapping back to the input
//   - Serial and per-basin parallel runs give identical results
//   - Sentinel errors, functional options, slog logging, YAML configuration
//
// Packages:
//
//	network/    — the river network: successors, predecessors, reaches, flow distance
//	raster/     — grid reference and values for raster-backed attributes
//	attribute/  — binding a source (values or raster) to the nodes
//	segment/    — cutting the network by policy
//	components/ — weakly connected component labels
//	reduce/     — reducers and group-wise reduction
//	remap/      — mapping derived results back to original node indices
//	dispatch/   — per-basin concurrent execution
//	aggregate/  — the end-to-end Aggregate and Segments operations
//	builder/    — deterministic network fixtures for tests and examples
//	config/     — YAML settings, network and attribute files
//	cmd/rivernet — command-line front end
//
// Quick start:
//
//	net, _ := builder.Build(nil, builder.Junction([]int{20, 30}, 40))
//	out, err := aggregate.Aggregate(ctx, net, attribute.Values(ksn),
//		aggregate.WithMethod(segment.BetweenConfluences),
//		aggregate.WithReducer(reduce.Median),
//		aggregate.WithSplit(true),
//	)
package rivernet
