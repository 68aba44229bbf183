package smoother

import "github.com/pkg/errors"

// A Session owns the models of one loaded document and
// the overlay of each model.
//
// Every mutation re-applies the affected model's overlay
// in full before returning. A Session is not safe for
// concurrent use.
type Session struct {
	Palette  Palette
	Models   []*Model
	Overlays []*Overlay
}

// NewSession builds and applies every model of a document
// with empty overlays.
func NewSession(doc *Document) (*Session, error) {
	s := &Session{Palette: doc.Palette}
	for i, data := range doc.Models {
		m, err := data.Model()
		if err != nil {
			return nil, errors.Wrapf(err, "model %d", i)
		}
		o := NewOverlay()
		Apply(m, o)
		s.Models = append(s.Models, m)
		s.Overlays = append(s.Overlays, o)
	}
	return s, nil
}

// Model gets a model by index, or nil if it does not
// exist.
func (s *Session) Model(idx int) *Model {
	if s == nil || idx < 0 || idx >= len(s.Models) {
		return nil
	}
	return s.Models[idx]
}

// Overlay gets the overlay of a model, or nil if the model
// does not exist.
func (s *Session) Overlay(idx int) *Overlay {
	if s.Model(idx) == nil {
		return nil
	}
	return s.Overlays[idx]
}

// SetOverlay replaces the overlay of a model and
// re-applies it.
func (s *Session) SetOverlay(idx int, o *Overlay) error {
	if s.Model(idx) == nil {
		return errors.Errorf("set overlay: no model %d", idx)
	}
	if o == nil {
		o = NewOverlay()
	}
	s.Overlays[idx] = o
	Apply(s.Models[idx], o)
	return nil
}

// Toggle flips the bits b at a coordinate of a model's
// overlay and re-applies it.
func (s *Session) Toggle(idx int, c Coord, b CellConfig) error {
	if s.Model(idx) == nil {
		return errors.Errorf("toggle: no model %d", idx)
	}
	s.Overlays[idx].Toggle(c, b)
	Apply(s.Models[idx], s.Overlays[idx])
	return nil
}

// SetUseBuggySmooths switches the legacy patterns on or
// off for every model.
func (s *Session) SetUseBuggySmooths(use bool) {
	for i, m := range s.Models {
		if s.Overlays[i].UseBuggySmooths == use {
			continue
		}
		s.Overlays[i].UseBuggySmooths = use
		Apply(m, s.Overlays[i])
	}
}

// Lookup gets the content at a coordinate of a model,
// including disabled content. Unknown models and out of
// bounds coordinates yield nothing.
func (s *Session) Lookup(idx int, c Coord) (*Voxel, []*Smooth) {
	return s.Model(idx).Lookup(c)
}
