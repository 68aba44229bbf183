package smoothmesh

import (
	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Face is a triangle of output geometry with the palette
// index it should be drawn with.
type Face struct {
	Triangle *model3d.Triangle
	Color    int
}

// Build creates the visible geometry of an applied model.
//
// Voxels are included if they are enabled and not culled,
// and smooths if they are enabled. Every cell is centered
// on X and Y using the model's CenterOffset, while Z is
// left in grid units so the model rests on the ground.
func Build(m *smoother.Model) ([]Face, error) {
	var faces []Face
	cube := Cube()
	for _, v := range m.Voxels {
		if !v.Enabled || v.Culled {
			continue
		}
		offset := cellOffset(m, v.Coord)
		for _, t := range cube {
			faces = append(faces, Face{Triangle: translate(t, offset), Color: v.Color})
		}
	}

	shapes := map[smoother.Pattern][]*model3d.Triangle{}
	for _, p := range smoother.Patterns {
		shape, err := Shape(p)
		if err != nil {
			return nil, err
		}
		shapes[p] = shape
	}
	for _, s := range m.Smooths {
		if !s.Enabled {
			continue
		}
		shape, ok := shapes[s.Pattern]
		if !ok {
			return nil, errors.Errorf("build: unknown pattern %v at %v", s.Pattern, s.Coord)
		}
		orient, err := GetOrientation(s.Orientation)
		if err != nil {
			return nil, errors.Wrapf(err, "build: smooth at %v", s.Coord)
		}
		offset := cellOffset(m, s.Coord)
		for _, t := range shape {
			faces = append(faces, Face{
				Triangle: translate(orient.ApplyTriangle(t), offset),
				Color:    s.Color,
			})
		}
	}
	return faces, nil
}

// Mesh creates a mesh out of faces, dropping colors.
func Mesh(faces []Face) *model3d.Mesh {
	triangles := make([]*model3d.Triangle, len(faces))
	for i, f := range faces {
		triangles[i] = f.Triangle
	}
	return model3d.NewMeshTriangles(triangles)
}

// SaveSTL writes faces to an STL file.
func SaveSTL(path string, faces []Face) error {
	if err := Mesh(faces).SaveGroupedSTL(path); err != nil {
		return errors.Wrap(err, "save STL")
	}
	return nil
}

func cellOffset(m *smoother.Model, c smoother.Coord) model3d.Coord3D {
	return model3d.Coord3D{
		X: float64(c[0]) - m.CenterOffset.X,
		Y: float64(c[1]) - m.CenterOffset.Y,
		Z: float64(c[2]),
	}
}

func translate(t *model3d.Triangle, offset model3d.Coord3D) *model3d.Triangle {
	return &model3d.Triangle{t[0].Add(offset), t[1].Add(offset), t[2].Add(offset)}
}
