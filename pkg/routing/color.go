package routing

// color is the per-vertex Dijkstra visitor state. Sized to |V| and reused
// across searches within one PathFinder (spec §9: "Color map reuse"),
// reset only for the vertices touched by the previous search.
type color uint8

const (
	white color = iota // not yet discovered
	gray               // in the priority queue, not finished
	black              // finished (popped with its final distance)
)
