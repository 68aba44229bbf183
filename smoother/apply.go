package smoother

// Apply derives every flag and smooth of m from the raw
// voxels and an overlay.
//
// Voxels are enabled according to the NoVoxel bits, all
// previous smooths are discarded, voxels are culled, and
// every blank cell is classified again. Applying the same
// overlay twice yields identical state.
//
// A nil overlay is treated as an empty one. Apply does
// nothing for a nil model.
func Apply(m *Model, o *Overlay) {
	if m == nil {
		return
	}
	for i := range m.Voxels {
		v := &m.Voxels[i]
		v.Enabled = !o.Has(v.Coord, NoVoxel)
	}
	for i := range m.cells {
		m.cells[i].Smooths = m.cells[i].Smooths[:0]
	}
	m.Smooths = nil
	cull(m)
	classify(m, o)
}
