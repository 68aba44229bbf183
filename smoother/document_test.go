package smoother

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentYAML = `
palette: ["#ff0000", "#00ff00ff"]
models:
  - size: [3, 3, 1]
    voxels:
      - [0, 1, 0, 1]
      - [1, 0, 0, 1]
`

const testDocumentJSON = `{
  "models": [
    {"size": [2, 2, 2], "voxels": [[0, 0, 0, 2], [1, 1, 1, 3]]}
  ]
}`

func TestReadDocumentYAML(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(testDocumentYAML))
	require.NoError(t, err)
	require.Len(t, doc.Palette, 2)
	assert.Equal(t, Color{R: 0xff, A: 0xff}, doc.Palette[0])
	require.Len(t, doc.Models, 1)

	m, err := doc.Models[0].Model()
	require.NoError(t, err)
	assert.Equal(t, Coord{3, 3, 1}, m.Size)
	require.Len(t, m.Voxels, 2)
	assert.Equal(t, Voxel{Coord: Coord{1, 0, 0}, Color: 1, Enabled: true}, m.Voxels[1])
}

func TestReadDocumentJSON(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(testDocumentJSON))
	require.NoError(t, err)
	assert.Empty(t, doc.Palette)
	raw, err := doc.Models[0].RawVoxels()
	require.NoError(t, err)
	assert.Equal(t, []RawVoxel{
		{Coord: Coord{0, 0, 0}, Color: 2},
		{Coord: Coord{1, 1, 1}, Color: 3},
	}, raw)
}

func TestReadDocumentErrors(t *testing.T) {
	inputs := []string{
		"",
		"models: []",
		"models: [{size: [1, 1, 1], voxels: [[0, 0, 0]]}]",
		"palette: [\"#12\"]\nmodels: [{size: [1, 1, 1]}]",
		"models: {}",
	}
	for _, input := range inputs {
		doc, err := ReadDocument(strings.NewReader(input))
		if err == nil {
			_, err = doc.Models[0].Model()
		}
		assert.Error(t, err, "input %q", input)
	}

	bad := ModelData{Size: []int{1, 1}}
	_, err := bad.Model()
	assert.Error(t, err)
}

func TestLoadDocumentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocumentJSON), 0644))

	doc, err := LoadDocumentFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), doc.Palette)

	img := image.NewNRGBA(image.Rect(0, 0, MaxColors, 1))
	img.SetNRGBA(1, 0, color.NRGBA{G: 0x80, A: 0xff})
	pf, err := os.Create(filepath.Join(dir, "palette.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(pf, img))
	require.NoError(t, pf.Close())

	withPalette := "palette_file: palette.png\n" + testDocumentYAML
	require.NoError(t, os.WriteFile(path, []byte(withPalette), 0644))
	doc, err = LoadDocumentFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Palette, MaxColors)
	c, ok := doc.Palette.At(2)
	require.True(t, ok)
	assert.Equal(t, Color{G: 0x80, A: 0xff}, c)

	_, err = LoadDocumentFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
