package smoother

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CellConfig is a bitmask of per-cell suppressions.
type CellConfig uint8

const (
	// NoVoxel disables the source voxel in a cell.
	NoVoxel CellConfig = 1 << iota

	// NoSmooth disables every smooth synthesized in a
	// cell.
	NoSmooth

	// NoContent suppresses everything in a cell.
	NoContent CellConfig = NoVoxel | NoSmooth
)

// ParseCellConfig parses a bit name such as "no-voxel".
func ParseCellConfig(s string) (CellConfig, error) {
	switch strings.ToLower(s) {
	case "no-voxel", "novoxel":
		return NoVoxel, nil
	case "no-smooth", "nosmooth":
		return NoSmooth, nil
	case "blank", "no-content":
		return NoContent, nil
	}
	return 0, errors.Errorf("parse cell config: unknown bit %q", s)
}

func (c CellConfig) String() string {
	switch c {
	case 0:
		return "none"
	case NoVoxel:
		return "no-voxel"
	case NoSmooth:
		return "no-smooth"
	case NoContent:
		return "blank"
	}
	return fmt.Sprintf("CellConfig(%d)", uint8(c))
}

// An Overlay is the user-editable configuration of a
// model: a sparse map of per-cell suppressions plus
// global classification options.
//
// The zero value is an empty overlay.
type Overlay struct {
	// UseBuggySmooths enables the legacy SIDECORNER
	// patterns.
	UseBuggySmooths bool

	cells map[Coord]CellConfig
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{cells: map[Coord]CellConfig{}}
}

// Get gets the configuration at a coordinate.
func (o *Overlay) Get(c Coord) CellConfig {
	if o == nil {
		return 0
	}
	return o.cells[c]
}

// Has checks if every bit of b is set at c.
func (o *Overlay) Has(c Coord, b CellConfig) bool {
	return o.Get(c)&b == b
}

// Set replaces the configuration at a coordinate.
// Setting 0 removes the entry.
func (o *Overlay) Set(c Coord, cfg CellConfig) {
	if cfg == 0 {
		delete(o.cells, c)
		return
	}
	if o.cells == nil {
		o.cells = map[Coord]CellConfig{}
	}
	o.cells[c] = cfg
}

// Toggle flips the bits b at a coordinate and returns
// the new configuration.
func (o *Overlay) Toggle(c Coord, b CellConfig) CellConfig {
	cfg := o.Get(c) ^ b
	o.Set(c, cfg)
	return cfg
}

// Len gets the number of configured cells.
func (o *Overlay) Len() int {
	if o == nil {
		return 0
	}
	return len(o.cells)
}

// Coords gets every configured coordinate in x, y, z
// order.
func (o *Overlay) Coords() []Coord {
	if o == nil {
		return nil
	}
	res := make([]Coord, 0, len(o.cells))
	for c := range o.cells {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if res[i][k] != res[j][k] {
				return res[i][k] < res[j][k]
			}
		}
		return false
	})
	return res
}

// Clone creates a deep copy of the overlay.
func (o *Overlay) Clone() *Overlay {
	res := NewOverlay()
	if o == nil {
		return res
	}
	res.UseBuggySmooths = o.UseBuggySmooths
	for c, cfg := range o.cells {
		res.cells[c] = cfg
	}
	return res
}

// FormatCoordKey encodes a coordinate as "[x,y,z]".
func FormatCoordKey(c Coord) string {
	return fmt.Sprintf("[%d,%d,%d]", c[0], c[1], c[2])
}

// ParseCoordKey decodes a key written by FormatCoordKey.
func ParseCoordKey(key string) (Coord, error) {
	s := strings.TrimSpace(key)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return Coord{}, errors.Errorf("parse coord key: malformed key %q", key)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return Coord{}, errors.Errorf("parse coord key: malformed key %q", key)
	}
	var res Coord
	for i, p := range parts {
		x, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Coord{}, errors.Wrapf(err, "parse coord key %q", key)
		}
		res[i] = x
	}
	return res, nil
}

// MustParseCoordKey is like ParseCoordKey, but panics on
// malformed keys. Keys are only ever produced by
// FormatCoordKey, so a failure is a bug in the writer.
func MustParseCoordKey(key string) Coord {
	c, err := ParseCoordKey(key)
	if err != nil {
		panic(err)
	}
	return c
}

type overlayFile struct {
	UseBuggySmooths bool              `yaml:"use_buggy_smooths"`
	Cells           map[string]string `yaml:"cells,omitempty"`
}

// MarshalYAML encodes the overlay with "[x,y,z]" keys.
func (o *Overlay) MarshalYAML() (interface{}, error) {
	f := overlayFile{UseBuggySmooths: o.UseBuggySmooths}
	if o.Len() > 0 {
		f.Cells = map[string]string{}
		for c, cfg := range o.cells {
			f.Cells[FormatCoordKey(c)] = cfg.String()
		}
	}
	return f, nil
}

// UnmarshalYAML decodes an overlay written by MarshalYAML.
func (o *Overlay) UnmarshalYAML(node *yaml.Node) error {
	var f overlayFile
	if err := node.Decode(&f); err != nil {
		return err
	}
	res := NewOverlay()
	res.UseBuggySmooths = f.UseBuggySmooths
	for key, value := range f.Cells {
		c, err := ParseCoordKey(key)
		if err != nil {
			return err
		}
		cfg, err := parseStoredConfig(value)
		if err != nil {
			return err
		}
		res.Set(c, cfg)
	}
	*o = *res
	return nil
}

func parseStoredConfig(value string) (CellConfig, error) {
	if value == "none" {
		return 0, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || CellConfig(n)&^NoContent != 0 {
			return 0, errors.Errorf("parse cell config: invalid mask %d", n)
		}
		return CellConfig(n), nil
	}
	return ParseCellConfig(value)
}

// ReadOverlay decodes a YAML overlay.
func ReadOverlay(r io.Reader) (*Overlay, error) {
	o := NewOverlay()
	if err := yaml.NewDecoder(r).Decode(o); err != nil {
		if err == io.EOF {
			return o, nil
		}
		return nil, errors.Wrap(err, "read overlay")
	}
	return o, nil
}

// Write encodes the overlay as YAML.
func (o *Overlay) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return errors.Wrap(err, "write overlay")
	}
	return errors.Wrap(enc.Close(), "write overlay")
}

// LoadOverlayFile reads an overlay from a file.
//
// A missing file yields an empty overlay, since overlays
// are created lazily by the first edit.
func LoadOverlayFile(path string) (*Overlay, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewOverlay(), nil
	} else if err != nil {
		return nil, errors.Wrap(err, "load overlay")
	}
	defer f.Close()
	return ReadOverlay(f)
}

// SaveOverlayFile writes an overlay to a file.
func SaveOverlayFile(path string, o *Overlay) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save overlay")
	}
	defer f.Close()
	return o.Write(f)
}

func (o *Overlay) useBuggySmooths() bool {
	return o != nil && o.UseBuggySmooths
}
