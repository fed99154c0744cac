// Package topo implements the AS-level model of the topology generator: it
// places AS nodes on a bounded plane and assigns bandwidths to AS edges.
//
// # Reading Guide
//
//   - graph.go: Graph, Node, Edge and their configuration records
//   - grid.go: OccupancyGrid, the integer-cell collision model
//   - placement.go: uniform-random and heavy-tailed (clustered) placement
//   - bandwidth.go: per-edge bandwidth sampling
//   - model.go: ASModel, one generation run end to end
//
// Sampling lives in sub-package topo/random. Each ASModel derives one sampler
// per subsystem (placement, bandwidth) from its seed, see rng.go.
//
// # Errors
//
// Nothing in this package terminates the process. Invalid selectors yield
// *SelectorError, overfull planes *RegionTooSmallError, and bandwidth
// assignment on a non-AS edge *EdgeLevelError. Match them with errors.Is
// against ErrInvalidSelector, ErrRegionTooSmall and ErrNonASEdge.
package topo
