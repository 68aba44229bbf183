package smoother

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCullEnclosed(t *testing.T) {
	m := newTestModel(t, Coord{3, 3, 3}, nil, 1, filledCube(3)...)
	for _, v := range m.Voxels {
		assert.Equal(t, v.Coord == Coord{1, 1, 1}, v.Culled, "voxel %v", v.Coord)
	}
}

func TestCullNeighborDisabled(t *testing.T) {
	center := Coord{1, 1, 1}
	m := newTestModel(t, Coord{3, 3, 3}, nil, 1, filledCube(3)...)

	for _, d := range stencilOffsets[:6] {
		o := NewOverlay()
		o.Set(center.Add(d), NoVoxel)
		Apply(m, o)
		v, _ := m.Lookup(center)
		require.NotNil(t, v)
		assert.False(t, v.Culled, "neighbor %v disabled", d)

		Apply(m, NewOverlay())
		assert.True(t, v.Culled, "neighbor %v enabled", d)
	}
}

func TestCullDisabledVoxel(t *testing.T) {
	center := Coord{1, 1, 1}
	o := NewOverlay()
	o.Set(center, NoVoxel)
	m := newTestModel(t, Coord{3, 3, 3}, o, 1, filledCube(3)...)

	v, _ := m.Lookup(center)
	require.NotNil(t, v)
	assert.False(t, v.Enabled)
	assert.True(t, v.Culled)

	for _, d := range stencilOffsets[:6] {
		n, _ := m.Lookup(center.Add(d))
		assert.False(t, n.Culled)
	}
}

func TestCullBoundary(t *testing.T) {
	m := newTestModel(t, Coord{1, 1, 1}, nil, 1, Coord{0, 0, 0})
	assert.False(t, m.Voxels[0].Culled)
}
