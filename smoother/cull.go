package smoother

// cull marks every voxel whose six faces are all covered
// by enabled voxels. Faces on the grid boundary are never
// covered.
//
// Disabled voxels are culled by the same rule, but never
// cover a neighbor, which keeps culling consistent with
// the occupancy used by the classifier.
func cull(m *Model) {
	for i := range m.Voxels {
		v := &m.Voxels[i]
		v.Culled = true
		for _, d := range stencilOffsets[:6] {
			if m.enabledVoxel(v.Coord.Add(d)) == -1 {
				v.Culled = false
				break
			}
		}
	}
}
