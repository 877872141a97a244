package georef

// Offsets maps each mode to the additive constant that turns a stop's base
// vertex index into its logical vertex in the unified multi-mode graph:
// logical = offsets[mode] + base(stop).
type Offsets [ModeCount]VertexIdx

// Logical returns the logical vertex for mode m at base vertex base.
func (o Offsets) Logical(m Mode, base VertexIdx) VertexIdx {
	return o[m] + base
}
