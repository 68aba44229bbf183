package smoothmesh

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// PaletteMaterial is the material name used by WriteOBJ
// and WriteMTL.
const PaletteMaterial = "palette"

// WriteOBJ encodes faces as a Wavefront OBJ file which
// textures every face from a 256x1 palette image.
//
// Coordinates are converted to a Y-up space by writing
// each vertex as (-x, z, y). Shared vertices are merged.
func WriteOBJ(w io.Writer, mtlName string, faces []Face) error {
	bw := bufio.NewWriter(w)

	vertexIDs := map[model3d.Coord3D]int{}
	var vertices []model3d.Coord3D
	colorIDs := map[int]int{}
	var colors []int
	faceIDs := make([][4]int, len(faces))
	for i, f := range faces {
		for j, c := range f.Triangle {
			id, ok := vertexIDs[c]
			if !ok {
				vertices = append(vertices, c)
				id = len(vertices)
				vertexIDs[c] = id
			}
			faceIDs[i][j] = id
		}
		id, ok := colorIDs[f.Color]
		if !ok {
			colors = append(colors, f.Color)
			id = len(colors)
			colorIDs[f.Color] = id
		}
		faceIDs[i][3] = id
	}

	fmt.Fprintf(bw, "mtllib %s\nusemtl %s\n", mtlName, PaletteMaterial)
	for _, v := range vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", -v.X, v.Z, v.Y)
	}
	for _, c := range colors {
		fmt.Fprintf(bw, "vt %g 0.5\n", (float64(c)-0.5)/smoother.MaxColors)
	}
	for _, ids := range faceIDs {
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", ids[0], ids[3], ids[1], ids[3], ids[2], ids[3])
	}
	return errors.Wrap(bw.Flush(), "write OBJ")
}

// WriteMTL encodes the material referenced by WriteOBJ.
func WriteMTL(w io.Writer, pngName string) error {
	_, err := fmt.Fprintf(w, "newmtl %s\nmap_Kd %s\n", PaletteMaterial, pngName)
	return errors.Wrap(err, "write MTL")
}

// WritePalettePNG encodes a palette as a 256x1 image,
// padding missing entries with black.
func WritePalettePNG(w io.Writer, p smoother.Palette) error {
	img := image.NewNRGBA(image.Rect(0, 0, smoother.MaxColors, 1))
	for i := 0; i < smoother.MaxColors; i++ {
		c, _ := p.At(i + 1)
		img.SetNRGBA(i, 0, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	}
	return errors.Wrap(png.Encode(w, img), "write palette PNG")
}

// SaveOBJ writes basePath.obj, basePath.mtl and
// basePath.png.
func SaveOBJ(basePath string, faces []Face, p smoother.Palette) error {
	name := filepath.Base(basePath)
	writers := []struct {
		ext   string
		write func(w io.Writer) error
	}{
		{".obj", func(w io.Writer) error { return WriteOBJ(w, name+".mtl", faces) }},
		{".mtl", func(w io.Writer) error { return WriteMTL(w, name+".png") }},
		{".png", func(w io.Writer) error { return WritePalettePNG(w, p) }},
	}
	for _, x := range writers {
		if err := saveFile(basePath+x.ext, x.write); err != nil {
			return err
		}
	}
	return nil
}

func saveFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save OBJ")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "save OBJ")
}
