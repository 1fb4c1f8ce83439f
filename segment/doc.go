// Package segment turns a river network and a segmentation policy into a cut
// network whose connected components are exactly the groups to aggregate.
//
// Policies:
//
//   - BetweenConfluences ("between-confluences"): every link entering a
//     confluence is removed, so each component is one reach. The confluence
//     node itself starts the downstream reach.
//   - FixedLength ("fixed-length-segments", default): the reach cuts plus
//     regular sub-cuts. Within a reach, flow distance d is measured from the
//     reach's downstream end and a node falls in piece floor(d/L); a reach of
//     length ℓ therefore yields ⌈ℓ/L⌉ pieces, all of full length L except the
//     most upstream one, which absorbs the remainder.
//   - DrainageBasins ("drainage-basins"): no cut at all.
//   - ExplicitLocations ("explicit-locations"): the successor link of every
//     listed node is removed; the node becomes the outlet of its upstream group.
//
// Cuts only remove links, so a Cut keeps the original node indexing; its
// Origin mapping is the identity and is carried so that remapping never
// relies on positional equality.
//
// Errors:
//
//   - ErrInvalidPolicy:    unknown policy name.
//   - ErrInvalidParameter: non-positive or non-finite segment length, or
//     ExplicitLocations without locations.
//   - ErrInvalidLocation:  a location outside the network's node set.
package segment
