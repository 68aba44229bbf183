package smoother

// StencilSize is the number of neighbors inspected around
// each blank cell.
const StencilSize = 18

// stencilOffsets holds the six face neighbors followed by
// the twelve edge neighbors. Rule slots index this table.
var stencilOffsets = [StencilSize]Coord{
	{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},

	{-1, -1, 0}, {-1, 0, -1}, {-1, 1, 0}, {-1, 0, 1},
	{1, -1, 0}, {1, 0, -1}, {1, 1, 0}, {1, 0, 1},
	{0, -1, -1}, {0, -1, 1}, {0, 1, -1}, {0, 1, 1},
}

var (
	faceSlots = []int{0, 1, 2, 3, 4, 5}
	edgeSlots = []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
)

// A stencil holds the voxel index found in each slot, or
// -1 for an empty slot.
type stencil [StencilSize]int

// A rule matches when the lead slot is filled, every slot
// in equal has an equivalent color, and no slot in unequal
// does. A match consumes the lead and equal slots.
type rule struct {
	Pattern     Pattern
	Orientation int
	Lead        int
	Equal       []int
	Unequal     []int

	// Legacy rules only run with Overlay.UseBuggySmooths.
	Legacy bool
}

var rules = buildRules()

func buildRules() []rule {
	var res []rule

	corners := []struct{ a, b, orient int }{
		{0, 1, 4}, {0, 2, 3}, {0, 4, 10}, {0, 5, 7},
		{1, 2, 0}, {1, 3, 5}, {1, 5, 6},
		{2, 3, 2}, {2, 4, 1},
		{3, 4, 11}, {3, 5, 8},
		{4, 5, 9},
	}
	for _, c := range corners {
		res = append(res, rule{
			Pattern:     Corner,
			Orientation: c.orient,
			Lead:        c.a,
			Equal:       []int{c.b},
			Unequal:     without(faceSlots, c.a, c.b),
		})
	}

	embeds := []struct{ lead, b, c, orient int }{
		{0, 1, 2, 0}, {1, 2, 3, 2}, {0, 2, 4, 3}, {2, 3, 4, 1},
		{0, 4, 5, 9}, {1, 3, 5, 6}, {0, 1, 5, 7}, {4, 3, 5, 8},
	}
	for _, e := range embeds {
		res = append(res, rule{
			Pattern:     Embed,
			Orientation: e.orient,
			Lead:        e.lead,
			Equal:       []int{e.b, e.c},
			Unequal:     without(faceSlots, e.lead, e.b, e.c),
		})
	}

	outbeds := []struct{ lead, b, c, orient int }{
		{6, 7, 14, 0}, {6, 9, 15, 4}, {7, 8, 16, 3}, {8, 9, 17, 9},
		{10, 11, 14, 2}, {10, 13, 15, 6}, {11, 12, 16, 1}, {12, 13, 17, 8},
	}
	for _, o := range outbeds {
		res = append(res, rule{
			Pattern:     Outbed,
			Orientation: o.orient,
			Lead:        o.lead,
			Equal:       []int{o.b, o.c},
			Unequal:     without(edgeSlots, o.lead, o.b, o.c),
		})
	}

	res = append(res,
		rule{Pattern: SideCorner, Orientation: 0, Lead: 9, Equal: []int{0, 17}, Legacy: true},
		rule{Pattern: SideCorner, Orientation: 12, Lead: 13, Equal: []int{3, 17}, Legacy: true},
	)
	return res
}

func without(slots []int, remove ...int) []int {
	var res []int
SlotLoop:
	for _, s := range slots {
		for _, r := range remove {
			if s == r {
				continue SlotLoop
			}
		}
		res = append(res, s)
	}
	return res
}

// A match is the result of one successful rule.
type match struct {
	Pattern     Pattern
	Orientation int
	Color       int
}

// classify synthesizes smooths for every blank cell of m.
//
// Cells are visited with x outermost and z innermost, so
// the order of m.Smooths is deterministic.
func classify(m *Model, o *Overlay) {
	var c Coord
	for c[0] = 0; c[0] < m.Size[0]; c[0]++ {
		for c[1] = 0; c[1] < m.Size[1]; c[1]++ {
			for c[2] = 0; c[2] < m.Size[2]; c[2]++ {
				if m.State(c, false) != BlankCell {
					continue
				}
				s, ok := m.stencil(c)
				if !ok {
					continue
				}
				enabled := !o.Has(c, NoSmooth)
				cell := m.cell(c)
				for _, mt := range s.matches(m, o.useBuggySmooths()) {
					cell.Smooths = append(cell.Smooths, len(m.Smooths))
					m.Smooths = append(m.Smooths, Smooth{
						Coord:       c,
						Color:       mt.Color,
						Pattern:     mt.Pattern,
						Orientation: mt.Orientation,
						Enabled:     enabled,
					})
				}
			}
		}
	}
}

// stencil gathers the enabled voxels around c.
//
// The second return value is false if no slot is filled.
func (m *Model) stencil(c Coord) (stencil, bool) {
	var s stencil
	var found bool
	for i, d := range stencilOffsets {
		s[i] = m.enabledVoxel(c.Add(d))
		if s[i] != -1 {
			found = true
		}
	}
	return s, found
}

// matches runs the rule list until no rule fires,
// consuming slots as it goes. The receiver is a copy, so
// consumption never touches the grid.
func (s stencil) matches(m *Model, legacy bool) []match {
	var res []match
	for {
		mt, ok := s.next(m, legacy)
		if !ok {
			return res
		}
		res = append(res, mt)
	}
}

func (s *stencil) next(m *Model, legacy bool) (match, bool) {
	for _, r := range rules {
		if r.Legacy && !legacy {
			continue
		}
		if !s.matchRule(m, &r) {
			continue
		}
		mt := match{
			Pattern:     r.Pattern,
			Orientation: r.Orientation,
			Color:       m.Voxels[s[r.Lead]].Color,
		}
		s[r.Lead] = -1
		for _, slot := range r.Equal {
			s[slot] = -1
		}
		return mt, true
	}
	return match{}, false
}

func (s *stencil) matchRule(m *Model, r *rule) bool {
	if s[r.Lead] == -1 {
		return false
	}
	for _, slot := range r.Equal {
		if !s.slotEq(m, r.Lead, slot) {
			return false
		}
	}
	for _, slot := range r.Unequal {
		if s.slotEq(m, r.Lead, slot) {
			return false
		}
	}
	return true
}

// slotEq compares two slots with PalEq. Empty slots are
// never equal to anything.
func (s *stencil) slotEq(m *Model, i, j int) bool {
	if s[i] == -1 || s[j] == -1 {
		return false
	}
	return PalEq(m.Voxels[s[i]].Color, m.Voxels[s[j]].Color)
}
