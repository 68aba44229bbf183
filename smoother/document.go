package smoother

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Document is the decoded output of a voxel file: a
// palette and one or more models.
//
// Documents are stored as YAML (or JSON, which YAML
// accepts) with voxels written as [x, y, z, color].
type Document struct {
	Palette Palette `yaml:"palette,omitempty"`

	// PaletteFile optionally names a PNG palette strip,
	// relative to the document. It takes precedence over
	// Palette.
	PaletteFile string `yaml:"palette_file,omitempty"`

	Models []ModelData `yaml:"models"`
}

// ModelData is the raw content of one model.
type ModelData struct {
	Size   []int   `yaml:"size,flow"`
	Voxels [][]int `yaml:"voxels"`
}

// RawVoxels converts the voxel rows into RawVoxels.
func (m *ModelData) RawVoxels() ([]RawVoxel, error) {
	res := make([]RawVoxel, len(m.Voxels))
	for i, row := range m.Voxels {
		if len(row) != 4 {
			return nil, errors.Errorf("voxel %d: expected [x, y, z, color] but got %v", i, row)
		}
		res[i] = RawVoxel{Coord: Coord{row[0], row[1], row[2]}, Color: row[3]}
	}
	return res, nil
}

// Model creates an unapplied Model from the data.
func (m *ModelData) Model() (*Model, error) {
	if len(m.Size) != 3 {
		return nil, errors.Errorf("expected size [x, y, z] but got %v", m.Size)
	}
	voxels, err := m.RawVoxels()
	if err != nil {
		return nil, err
	}
	return NewModel(Coord{m.Size[0], m.Size[1], m.Size[2]}, voxels)
}

// ReadDocument decodes a Document.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	if len(doc.Models) == 0 {
		return nil, errors.New("read document: no models")
	}
	return &doc, nil
}

// LoadDocumentFile reads a Document from a file and
// resolves its palette.
//
// If the document has neither a palette nor a palette
// file, DefaultPalette is used.
func LoadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load document")
	}
	defer f.Close()
	doc, err := ReadDocument(f)
	if err != nil {
		return nil, err
	}
	if doc.PaletteFile != "" {
		palPath := doc.PaletteFile
		if !filepath.IsAbs(palPath) {
			palPath = filepath.Join(filepath.Dir(path), palPath)
		}
		pf, err := os.Open(palPath)
		if err != nil {
			return nil, errors.Wrap(err, "load document palette")
		}
		defer pf.Close()
		doc.Palette, err = ReadPalettePNG(pf)
		if err != nil {
			return nil, err
		}
	}
	if len(doc.Palette) == 0 {
		doc.Palette = DefaultPalette()
	}
	return doc, nil
}

// Write encodes the document as YAML.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "write document")
	}
	return errors.Wrap(enc.Close(), "write document")
}
