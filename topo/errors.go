package topo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelector is matched by every *SelectorError.
	ErrInvalidSelector = errors.New("topo: invalid model selector")

	// ErrRegionTooSmall is matched by every *RegionTooSmallError.
	ErrRegionTooSmall = errors.New("topo: region too small for requested density")

	// ErrNonASEdge is matched by every *EdgeLevelError.
	ErrNonASEdge = errors.New("topo: edge is not AS-level")

	// ErrDuplicateNode indicates a second node was added under an occupied index.
	ErrDuplicateNode = errors.New("topo: node index already in use")

	// ErrNodeNotFound indicates an edge endpoint that is not in the graph.
	ErrNodeNotFound = errors.New("topo: node not found")
)

// SelectorError reports a placement strategy or bandwidth distribution
// selector that the model does not know.
type SelectorError struct {
	Selector string // "placement" or "bandwidth distribution"
	Value    string
	Err      error // underlying cause, may be nil
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("topo: invalid %s (%s)", e.Selector, e.Value)
}

func (e *SelectorError) Is(target error) bool { return target == ErrInvalidSelector }

func (e *SelectorError) Unwrap() error { return e.Err }

// RegionTooSmallError reports a placement request that the plane cannot hold,
// either up front (Requested > Capacity) or after the per-node attempt cap ran out.
type RegionTooSmallError struct {
	Requested int
	Placed    int
	Capacity  int
	Attempts  int
}

func (e *RegionTooSmallError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("topo: region too small: %d nodes requested, room for %d", e.Requested, e.Capacity)
	}
	return fmt.Sprintf("topo: region too small: no free cell after %d attempts (%d of %d nodes placed, %d cells)",
		e.Attempts, e.Placed, e.Requested, e.Capacity)
}

func (e *RegionTooSmallError) Is(target error) bool { return target == ErrRegionTooSmall }

// EdgeLevelError reports bandwidth assignment on an edge that is not AS-level.
// It always indicates a caller bug: the graph mixes topology levels.
type EdgeLevelError struct {
	EdgeID int
	Type   EdgeType
}

func (e *EdgeLevelError) Error() string {
	return fmt.Sprintf("topo: edge %d has type %s, want %s", e.EdgeID, e.Type, EdgeAS)
}

func (e *EdgeLevelError) Unwrap() error { return ErrNonASEdge }
