package routing

import "errors"

// ErrUnreachable means the target is outside the search radius or no path
// exists. Not a failure (spec §7): callers branch on it, it is never
// logged as an error.
var ErrUnreachable = errors.New("routing: target unreachable")

// ErrMissingEdge means path reconstruction could not find an edge between
// two adjacent predecessors — an invariant violation in the Dijkstra
// result, recoverable by the caller (spec §7).
var ErrMissingEdge = errors.New("routing: missing edge during path reconstruction")

// ErrUnhandledCaracteristic means a transport caracteristic outside the
// known enum appeared during stub splicing (spec §7).
var ErrUnhandledCaracteristic = errors.New("routing: unhandled transport caracteristic")

// ErrNotProjected means an EntryPoint could not be projected onto its
// mode's sub-graph, so no search can be launched from or to it.
var ErrNotProjected = errors.New("routing: coordinate did not project onto the street graph")
