// Package smoothmesh turns smoothed voxel models into
// triangle meshes.
package smoothmesh

import (
	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

const h = 0.5

// Cube creates the triangles of a unit voxel centered at
// the origin.
func Cube() []*model3d.Triangle {
	var res []*model3d.Triangle
	// front, back, top, bottom, right, left
	res = append(res, quad(xyz(-h, -h, h), xyz(h, -h, h), xyz(h, h, h), xyz(-h, h, h))...)
	res = append(res, quad(xyz(-h, -h, -h), xyz(-h, h, -h), xyz(h, h, -h), xyz(h, -h, -h))...)
	res = append(res, quad(xyz(-h, h, -h), xyz(-h, h, h), xyz(h, h, h), xyz(h, h, -h))...)
	res = append(res, quad(xyz(-h, -h, -h), xyz(h, -h, -h), xyz(h, -h, h), xyz(-h, -h, h))...)
	res = append(res, quad(xyz(h, -h, -h), xyz(h, h, -h), xyz(h, h, h), xyz(h, -h, h))...)
	res = append(res, quad(xyz(-h, -h, -h), xyz(-h, -h, h), xyz(-h, h, h), xyz(-h, h, -h))...)
	return res
}

// Shape creates the base triangles for a smoothing
// pattern, in orientation 0.
func Shape(p smoother.Pattern) ([]*model3d.Triangle, error) {
	switch p {
	case smoother.Corner:
		// A bevel across one edge, closed at both ends.
		return append(
			quad(xyz(-h, -h, h), xyz(h, -h, h), xyz(h, h, -h), xyz(-h, h, -h)),
			tri(xyz(-h, -h, h), xyz(-h, h, -h), xyz(-h, -h, -h)),
			tri(xyz(h, -h, h), xyz(h, -h, -h), xyz(h, h, -h)),
		), nil
	case smoother.Embed:
		return []*model3d.Triangle{
			tri(xyz(-h, h, h), xyz(h, -h, h), xyz(h, h, -h)),
			tri(xyz(h, -h, h), xyz(h, -h, -h), xyz(h, h, -h)),
			tri(xyz(-h, h, h), xyz(h, h, -h), xyz(-h, h, -h)),
			tri(xyz(-h, h, h), xyz(-h, -h, h), xyz(h, -h, h)),
		}, nil
	case smoother.Outbed:
		return []*model3d.Triangle{
			tri(xyz(-h, -h, h), xyz(h, -h, -h), xyz(-h, h, -h)),
		}, nil
	case smoother.SideCorner:
		return []*model3d.Triangle{
			tri(xyz(-h, -h, h), xyz(-h, -h, -h), xyz(h, h, h)),
			tri(xyz(h, h, h), xyz(-h, h, -h), xyz(-h, h, h)),
			tri(xyz(h, h, h), xyz(-h, -h, -h), xyz(-h, h, -h)),
		}, nil
	}
	return nil, errors.Errorf("shape: unknown pattern %v", p)
}

func xyz(x, y, z float64) model3d.Coord3D {
	return model3d.Coord3D{X: x, Y: y, Z: z}
}

func tri(a, b, c model3d.Coord3D) *model3d.Triangle {
	return &model3d.Triangle{a, b, c}
}

func quad(a, b, c, d model3d.Coord3D) []*model3d.Triangle {
	return []*model3d.Triangle{tri(a, b, c), tri(a, c, d)}
}
