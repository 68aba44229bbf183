package smoother

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	doc, err := ReadDocument(strings.NewReader(testDocumentYAML))
	require.NoError(t, err)
	s, err := NewSession(doc)
	require.NoError(t, err)
	return s
}

func TestSessionLoad(t *testing.T) {
	s := newTestSession(t)
	require.Len(t, s.Models, 1)
	require.Len(t, s.Overlays, 1)
	assert.Equal(t, 0, s.Overlay(0).Len())

	voxel, smooths := s.Lookup(0, Coord{1, 1, 0})
	assert.Nil(t, voxel)
	require.Len(t, smooths, 1)
	assert.Equal(t, Corner, smooths[0].Pattern)
	assert.Equal(t, 1, smooths[0].Color)
}

func TestSessionToggle(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Toggle(0, Coord{1, 1, 0}, NoSmooth))
	_, smooths := s.Lookup(0, Coord{1, 1, 0})
	require.Len(t, smooths, 1)
	assert.False(t, smooths[0].Enabled)

	require.NoError(t, s.Toggle(0, Coord{1, 0, 0}, NoVoxel))
	voxel, smooths := s.Lookup(0, Coord{1, 0, 0})
	require.NotNil(t, voxel)
	assert.False(t, voxel.Enabled)
	assert.Empty(t, smooths)
	_, smooths = s.Lookup(0, Coord{1, 1, 0})
	assert.Empty(t, smooths)

	require.NoError(t, s.Toggle(0, Coord{1, 0, 0}, NoVoxel))
	_, smooths = s.Lookup(0, Coord{1, 1, 0})
	require.Len(t, smooths, 1)
	assert.False(t, smooths[0].Enabled)

	assert.Error(t, s.Toggle(1, Coord{0, 0, 0}, NoVoxel))
	assert.Error(t, s.Toggle(-1, Coord{0, 0, 0}, NoVoxel))
}

func TestSessionSetOverlay(t *testing.T) {
	s := newTestSession(t)
	o := NewOverlay()
	o.Set(Coord{0, 1, 0}, NoVoxel)
	require.NoError(t, s.SetOverlay(0, o))
	assert.Same(t, o, s.Overlay(0))
	assert.False(t, s.Models[0].Voxels[0].Enabled)

	require.NoError(t, s.SetOverlay(0, nil))
	assert.True(t, s.Models[0].Voxels[0].Enabled)
	assert.Error(t, s.SetOverlay(3, o))
}

func TestSessionBuggySmooths(t *testing.T) {
	doc := &Document{Models: []ModelData{{
		Size:   []int{3, 3, 3},
		Voxels: [][]int{{0, 1, 1, 5}, {0, 1, 2, 5}, {1, 2, 2, 5}},
	}}}
	s, err := NewSession(doc)
	require.NoError(t, err)
	_, smooths := s.Lookup(0, Coord{1, 1, 1})
	assert.Empty(t, smooths)

	s.SetUseBuggySmooths(true)
	_, smooths = s.Lookup(0, Coord{1, 1, 1})
	require.Len(t, smooths, 1)
	assert.Equal(t, SideCorner, smooths[0].Pattern)

	s.SetUseBuggySmooths(false)
	_, smooths = s.Lookup(0, Coord{1, 1, 1})
	assert.Empty(t, smooths)
}

func TestSessionMissingModel(t *testing.T) {
	s := newTestSession(t)
	assert.Nil(t, s.Model(5))
	assert.Nil(t, s.Overlay(5))
	voxel, smooths := s.Lookup(5, Coord{0, 0, 0})
	assert.Nil(t, voxel)
	assert.Nil(t, smooths)

	var nilSession *Session
	assert.Nil(t, nilSession.Model(0))
}
