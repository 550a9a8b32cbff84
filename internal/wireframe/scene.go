package wireframe

// ID identifies a box or text item for the lifetime of a scene.
type ID uint64

// Cell is a column/row position on the grid.
type Cell struct {
	X, Y int
}

// Box is a rectangle outline. W and H are at least 1.
type Box struct {
	ID         ID
	X, Y, W, H int
}

// Contains reports whether c lies inside the box.
func (b Box) Contains(c Cell) bool {
	return c.X >= b.X && c.X < b.X+b.W && c.Y >= b.Y && c.Y < b.Y+b.H
}

// TextItem is a single line of text anchored at its first rune.
type TextItem struct {
	ID    ID
	X, Y  int
	Value string
}

// Len is the number of cells the text covers, never less than 1.
func (t TextItem) Len() int {
	n := len([]rune(t.Value))
	if n < 1 {
		return 1
	}
	return n
}

// Contains reports whether c lies on the text's row span.
func (t TextItem) Contains(c Cell) bool {
	return c.Y == t.Y && c.X >= t.X && c.X < t.X+t.Len()
}

// Rect is an inclusive-origin rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// RectFromCells spans a and b regardless of drag direction.
func RectFromCells(a, b Cell) Rect {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Overlaps is a closed-interval test on both axes; touching edges overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W-1 && r.X+r.W-1 >= o.X &&
		r.Y <= o.Y+o.H-1 && r.Y+r.H-1 >= o.Y
}

// Scene is everything the exporter draws.
type Scene struct {
	Rows, Cols   int
	Boxes        []Box
	Texts        []TextItem
	MarginRight  int
	MarginBottom int
	Style        Style

	lastID ID
}

// NewScene returns an empty scene of the given size.
func NewScene(rows, cols int, style Style) *Scene {
	return &Scene{Rows: rows, Cols: cols, Style: style}
}

// NextID allocates an ID unique within the scene.
func (s *Scene) NextID() ID {
	s.lastID++
	return s.lastID
}

// AddBox appends a box with a fresh ID and returns it.
func (s *Scene) AddBox(x, y, w, h int) Box {
	box := Box{ID: s.NextID(), X: x, Y: y, W: w, H: h}
	s.Boxes = append(s.Boxes, box)
	return box
}

// AddText appends a text item with a fresh ID and returns it.
func (s *Scene) AddText(x, y int, value string) TextItem {
	t := TextItem{ID: s.NextID(), X: x, Y: y, Value: value}
	s.Texts = append(s.Texts, t)
	return t
}

// Box returns the box with id.
func (s *Scene) Box(id ID) (Box, bool) {
	if i := s.boxIndex(id); i >= 0 {
		return s.Boxes[i], true
	}
	return Box{}, false
}

// Text returns the text item with id.
func (s *Scene) Text(id ID) (TextItem, bool) {
	if i := s.textIndex(id); i >= 0 {
		return s.Texts[i], true
	}
	return TextItem{}, false
}

func (s *Scene) boxIndex(id ID) int {
	for i := range s.Boxes {
		if s.Boxes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Scene) textIndex(id ID) int {
	for i := range s.Texts {
		if s.Texts[i].ID == id {
			return i
		}
	}
	return -1
}

// HitTest finds the topmost element under c. Text wins over boxes, and
// later elements win over earlier ones.
func (s *Scene) HitTest(c Cell) (Selection, bool) {
	for i := len(s.Texts) - 1; i >= 0; i-- {
		if s.Texts[i].Contains(c) {
			return Selection{Kind: KindText, ID: s.Texts[i].ID}, true
		}
	}
	for i := len(s.Boxes) - 1; i >= 0; i-- {
		if s.Boxes[i].Contains(c) {
			return Selection{Kind: KindBox, ID: s.Boxes[i].ID}, true
		}
	}
	return Selection{}, false
}

// Remove deletes every element referenced by sel.
func (s *Scene) Remove(sel SelectionSet) {
	boxes := s.Boxes[:0]
	for _, b := range s.Boxes {
		if !sel.Has(Selection{Kind: KindBox, ID: b.ID}) {
			boxes = append(boxes, b)
		}
	}
	s.Boxes = boxes

	texts := s.Texts[:0]
	for _, t := range s.Texts {
		if !sel.Has(Selection{Kind: KindText, ID: t.ID}) {
			texts = append(texts, t)
		}
	}
	s.Texts = texts
}

// fitToGrid shrinks boxes wider or taller than the grid and pulls every
// shape back inside it.
func (s *Scene) fitToGrid() {
	for i := range s.Boxes {
		b := &s.Boxes[i]
		b.W = clamp(b.W, 1, s.Cols)
		b.H = clamp(b.H, 1, s.Rows)
		b.X, b.Y = s.clampBoxPos(b.X, b.Y, b.W, b.H)
	}
	for i := range s.Texts {
		t := &s.Texts[i]
		t.X, t.Y = s.clampTextPos(t.X, t.Y)
	}
}

// clampBoxPos keeps a box of size w×h inside the grid.
func (s *Scene) clampBoxPos(x, y, w, h int) (int, int) {
	return clamp(x, 0, s.Cols-w), clamp(y, 0, s.Rows-h)
}

// clampTextPos keeps a text anchor on the grid.
func (s *Scene) clampTextPos(x, y int) (int, int) {
	return clamp(x, 0, s.Cols-1), clamp(y, 0, s.Rows-1)
}

// clamp bounds n to [lo, hi]; when hi < lo the result is lo.
func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
