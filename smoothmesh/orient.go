package smoothmesh

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// NumOrientations is the number of orientation codes a
// smooth may carry.
const NumOrientations = 13

// An Orientation rotates, and possibly mirrors, a base
// shape into place.
type Orientation struct {
	// steps are applied first to last.
	steps  []*model3d.Matrix3Transform
	mirror bool
}

var orientations = [NumOrientations]*Orientation{
	0:  {},
	1:  {steps: rotations(turn{zAxis, 2})},
	2:  {steps: rotations(turn{zAxis, 1})},
	3:  {steps: rotations(turn{zAxis, -1})},
	4:  {steps: rotations(turn{yAxis, 1})},
	5:  {steps: rotations(turn{yAxis, -1})},
	6:  {steps: rotations(turn{yAxis, 2})},
	7:  {steps: rotations(turn{zAxis, 1}, turn{yAxis, 2})},
	8:  {steps: rotations(turn{zAxis, -1}, turn{yAxis, 2})},
	9:  {steps: rotations(turn{zAxis, 2}, turn{yAxis, 2})},
	10: {steps: rotations(turn{zAxis, 2}, turn{yAxis, 1})},
	11: {steps: rotations(turn{zAxis, 2}, turn{yAxis, -1})},
	12: {
		steps: []*model3d.Matrix3Transform{{
			Matrix: model3d.NewMatrix3Columns(xyz(-1, 0, 0), xyz(0, 1, 0), xyz(0, 0, 1)),
		}},
		mirror: true,
	},
}

// GetOrientation looks up an orientation code.
func GetOrientation(code int) (*Orientation, error) {
	if code < 0 || code >= NumOrientations {
		return nil, errors.Errorf("get orientation: invalid code %d", code)
	}
	return orientations[code], nil
}

// Apply transforms a point.
func (o *Orientation) Apply(c model3d.Coord3D) model3d.Coord3D {
	for _, s := range o.steps {
		c = s.Apply(c)
	}
	return c
}

// Mirrors checks if the orientation flips handedness.
func (o *Orientation) Mirrors() bool {
	return o.mirror
}

// ApplyTriangle transforms a triangle, reversing its
// winding if the orientation mirrors so that the normal
// still faces outward.
func (o *Orientation) ApplyTriangle(t *model3d.Triangle) *model3d.Triangle {
	res := &model3d.Triangle{o.Apply(t[0]), o.Apply(t[1]), o.Apply(t[2])}
	if o.mirror {
		res[1], res[2] = res[2], res[1]
	}
	return res
}

type axis int

const (
	yAxis axis = iota
	zAxis
)

// A turn is a number of quarter turns about an axis.
type turn struct {
	axis     axis
	quarters int
}

// rotations builds the rotations for turns, in the order
// they are applied.
func rotations(turns ...turn) []*model3d.Matrix3Transform {
	var res []*model3d.Matrix3Transform
	for _, t := range turns {
		res = append(res, quarterTurn(t.axis, t.quarters))
	}
	return res
}

// quarterTurn creates an exact right-handed rotation by
// quarters*90 degrees.
func quarterTurn(a axis, quarters int) *model3d.Matrix3Transform {
	q := ((quarters % 4) + 4) % 4
	cos := []float64{1, 0, -1, 0}[q]
	sin := []float64{0, 1, 0, -1}[q]
	var m *model3d.Matrix3
	switch a {
	case yAxis:
		m = model3d.NewMatrix3Columns(xyz(cos, 0, -sin), xyz(0, 1, 0), xyz(sin, 0, cos))
	case zAxis:
		m = model3d.NewMatrix3Columns(xyz(cos, sin, 0), xyz(-sin, cos, 0), xyz(0, 0, 1))
	}
	return &model3d.Matrix3Transform{Matrix: m}
}
