package smoothmesh

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jon-heard/MagicaVoxelSmoother/smoother"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOBJ(t *testing.T) {
	faces := []Face{
		{Triangle: tri(xyz(1, 2, 3), xyz(2, 2, 3), xyz(1, 4, 3)), Color: 5},
		{Triangle: tri(xyz(2, 2, 3), xyz(1, 4, 3), xyz(2, 4, 3)), Color: 7},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, "out.mtl", faces))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	expected := []string{
		"mtllib out.mtl",
		"usemtl palette",
		"v -1 3 2",
		"v -2 3 2",
		"v -1 3 4",
		"v -2 3 4",
		"vt 0.017578125 0.5",
		"vt 0.025390625 0.5",
		"f 1/1 2/1 3/1",
		"f 2/2 3/2 4/2",
	}
	assert.Equal(t, expected, lines)
}

func TestWriteMTL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMTL(&buf, "out.png"))
	assert.Equal(t, "newmtl palette\nmap_Kd out.png\n", buf.String())
}

func TestWritePalettePNG(t *testing.T) {
	p := smoother.Palette{{R: 1, G: 2, B: 3, A: 4}, {R: 0xff, A: 0xff}}
	var buf bytes.Buffer
	require.NoError(t, WritePalettePNG(&buf, p))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{1, 2, 3, 0xff}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
	r, _, _, _ = img.At(1, 0).RGBA()
	assert.EqualValues(t, 0xff, r>>8)
	r, g, b, a = img.At(200, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xff}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestSaveOBJ(t *testing.T) {
	m, err := smoother.NewModel(smoother.Coord{1, 1, 1}, []smoother.RawVoxel{{Color: 2}})
	require.NoError(t, err)
	smoother.Apply(m, nil)
	faces, err := Build(m)
	require.NoError(t, err)

	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, SaveOBJ(base, faces, smoother.DefaultPalette()))

	obj, err := os.ReadFile(base + ".obj")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(obj), "mtllib model.mtl\n"))
	assert.Equal(t, 8, strings.Count(string(obj), "\nv "))
	assert.Equal(t, 12, strings.Count(string(obj), "\nf "))

	mtl, err := os.ReadFile(base + ".mtl")
	require.NoError(t, err)
	assert.Contains(t, string(mtl), "map_Kd model.png")

	_, err = os.Stat(base + ".png")
	assert.NoError(t, err)
}
