package smoother

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestModel builds and applies a model whose voxels all
// have the given color.
func newTestModel(t *testing.T, size Coord, o *Overlay, color int, coords ...Coord) *Model {
	t.Helper()
	raw := make([]RawVoxel, len(coords))
	for i, c := range coords {
		raw[i] = RawVoxel{Coord: c, Color: color}
	}
	m, err := NewModel(size, raw)
	require.NoError(t, err)
	Apply(m, o)
	return m
}

// filledCube lists every coordinate of an n*n*n cube,
// except for those in skip.
func filledCube(n int, skip ...Coord) []Coord {
	var res []Coord
	var c Coord
	for c[0] = 0; c[0] < n; c[0]++ {
		for c[1] = 0; c[1] < n; c[1]++ {
		CoordLoop:
			for c[2] = 0; c[2] < n; c[2]++ {
				for _, s := range skip {
					if s == c {
						continue CoordLoop
					}
				}
				res = append(res, c)
			}
		}
	}
	return res
}

func smoothsAt(m *Model, c Coord) []Smooth {
	_, ptrs := m.Lookup(c)
	res := make([]Smooth, len(ptrs))
	for i, p := range ptrs {
		res[i] = *p
	}
	return res
}
