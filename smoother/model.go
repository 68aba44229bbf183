package smoother

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Coord is an integer grid coordinate.
type Coord [3]int

// Add gets the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c[0] + d[0], c[1] + d[1], c[2] + d[2]}
}

// CellState describes what occupies a grid cell.
type CellState int

const (
	InvalidCell CellState = iota
	BlankCell
	VoxelCell
	SmoothCell
)

func (c CellState) String() string {
	switch c {
	case InvalidCell:
		return "invalid"
	case BlankCell:
		return "blank"
	case VoxelCell:
		return "voxel"
	case SmoothCell:
		return "smooth"
	}
	return fmt.Sprintf("CellState(%d)", int(c))
}

// Pattern identifies the shape of a smooth.
type Pattern int

const (
	Corner Pattern = iota + 1
	Embed
	Outbed
	SideCorner
)

// Patterns lists every pattern in classification order.
var Patterns = []Pattern{Corner, Embed, Outbed, SideCorner}

func (p Pattern) String() string {
	switch p {
	case Corner:
		return "corner"
	case Embed:
		return "embed"
	case Outbed:
		return "outbed"
	case SideCorner:
		return "sidecorner"
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// A RawVoxel is a voxel as produced by a file reader,
// before any flags are derived.
type RawVoxel struct {
	Coord Coord
	Color int
}

// A Voxel is a colored unit cube from the source model.
type Voxel struct {
	Coord Coord
	Color int

	// Enabled is false if the overlay suppresses the
	// voxel.
	Enabled bool

	// Culled is true if every face of the voxel is
	// covered by an enabled neighbor.
	Culled bool
}

// A Smooth is filler geometry synthesized in a blank cell.
type Smooth struct {
	Coord       Coord
	Color       int
	Pattern     Pattern
	Orientation int
	Enabled     bool
}

// A Cell is one slot of the dense grid.
//
// Voxel is an index into Model.Voxels, or -1. Smooths
// holds indices into Model.Smooths.
type Cell struct {
	Voxel   int
	Smooths []int
}

// A Model is the grid of one voxel model together with
// its derived smooths.
//
// Everything except Size and the voxel coordinates and
// colors is recomputed by Apply.
type Model struct {
	Size Coord

	// CenterOffset is size/2 - 0.5 on every axis, used to
	// center the model for display.
	CenterOffset model3d.Coord3D

	Voxels  []Voxel
	Smooths []Smooth

	cells []Cell
}

// NewModel creates a model and links every voxel into
// the grid.
//
// All voxels start enabled and unculled, with no smooths.
// Call Apply to derive the flags and smooths.
func NewModel(size Coord, voxels []RawVoxel) (*Model, error) {
	for _, s := range size {
		if s <= 0 {
			return nil, errors.Errorf("new model: invalid size %v", size)
		}
	}
	m := &Model{
		Size: size,
		CenterOffset: model3d.Coord3D{
			X: float64(size[0])*0.5 - 0.5,
			Y: float64(size[1])*0.5 - 0.5,
			Z: float64(size[2])*0.5 - 0.5,
		},
		Voxels: make([]Voxel, 0, len(voxels)),
		cells:  make([]Cell, size[0]*size[1]*size[2]),
	}
	for i := range m.cells {
		m.cells[i].Voxel = -1
	}
	for _, raw := range voxels {
		if !m.InBounds(raw.Coord) {
			return nil, errors.Errorf("new model: voxel %v out of bounds", raw.Coord)
		}
		if raw.Color < 1 || raw.Color > MaxColors {
			return nil, errors.Errorf("new model: voxel %v has invalid color %d", raw.Coord, raw.Color)
		}
		cell := m.cell(raw.Coord)
		if cell.Voxel != -1 {
			return nil, errors.Errorf("new model: duplicate voxel at %v", raw.Coord)
		}
		cell.Voxel = len(m.Voxels)
		m.Voxels = append(m.Voxels, Voxel{Coord: raw.Coord, Color: raw.Color, Enabled: true})
	}
	return m, nil
}

// InBounds checks if a coordinate lies inside the grid.
func (m *Model) InBounds(c Coord) bool {
	if m == nil {
		return false
	}
	for i, x := range c {
		if x < 0 || x >= m.Size[i] {
			return false
		}
	}
	return true
}

// State gets the state of the cell at c.
//
// If includeDisabled is false, disabled voxels and smooths
// do not count as occupants. Out of bounds coordinates,
// and any coordinate of a nil model, are InvalidCell.
func (m *Model) State(c Coord, includeDisabled bool) CellState {
	if !m.InBounds(c) {
		return InvalidCell
	}
	cell := m.cell(c)
	if cell.Voxel != -1 && (includeDisabled || m.Voxels[cell.Voxel].Enabled) {
		return VoxelCell
	}
	for _, idx := range cell.Smooths {
		if includeDisabled || m.Smooths[idx].Enabled {
			return SmoothCell
		}
	}
	return BlankCell
}

// Lookup gets the voxel and smooths at a coordinate,
// including disabled ones.
//
// The returned pointers are valid until the next Apply.
func (m *Model) Lookup(c Coord) (*Voxel, []*Smooth) {
	if !m.InBounds(c) {
		return nil, nil
	}
	cell := m.cell(c)
	var voxel *Voxel
	if cell.Voxel != -1 {
		voxel = &m.Voxels[cell.Voxel]
	}
	var smooths []*Smooth
	for _, idx := range cell.Smooths {
		smooths = append(smooths, &m.Smooths[idx])
	}
	return voxel, smooths
}

// enabledVoxel gets the index of the enabled voxel at c,
// or -1 if there is none.
func (m *Model) enabledVoxel(c Coord) int {
	if !m.InBounds(c) {
		return -1
	}
	idx := m.cell(c).Voxel
	if idx == -1 || !m.Voxels[idx].Enabled {
		return -1
	}
	return idx
}

func (m *Model) cell(c Coord) *Cell {
	return &m.cells[c[0]+m.Size[0]*(c[1]+c[2]*m.Size[1])]
}

// Stats summarizes the derived state of a model.
type Stats struct {
	Voxels   int
	Enabled  int
	Culled   int
	Smooths  int
	Disabled int

	ByPattern map[Pattern]int
}

// Stats computes a summary of the model.
func (m *Model) Stats() Stats {
	res := Stats{ByPattern: map[Pattern]int{}}
	if m == nil {
		return res
	}
	res.Voxels = len(m.Voxels)
	for _, v := range m.Voxels {
		if v.Enabled {
			res.Enabled++
		}
		if v.Culled {
			res.Culled++
		}
	}
	res.Smooths = len(m.Smooths)
	for _, s := range m.Smooths {
		if !s.Enabled {
			res.Disabled++
		}
		res.ByPattern[s.Pattern]++
	}
	return res
}
