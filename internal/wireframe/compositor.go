package wireframe

// Blank is the content of an empty cell.
const Blank = ' '

// Buffer is a row-major grid of single-rune cells.
type Buffer [][]rune

// NewBuffer allocates a rows×cols buffer filled with Blank.
func NewBuffer(rows, cols int) Buffer {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	buf := make(Buffer, rows)
	for y := range buf {
		row := make([]rune, cols)
		for x := range row {
			row[x] = Blank
		}
		buf[y] = row
	}
	return buf
}

// At returns the rune at (x, y), or Blank outside the buffer.
func (b Buffer) At(x, y int) rune {
	if !b.inBounds(x, y) {
		return Blank
	}
	return b[y][x]
}

func (b Buffer) inBounds(x, y int) bool {
	return y >= 0 && y < len(b) && x >= 0 && x < len(b[y])
}

// Place writes r into cell (x, y), resolving conflicts with the existing
// content. Writes outside the buffer are dropped.
//
// Precedence: junction, then first write onto blank, then line over line
// (becomes a junction), then corners, then text (last writer wins).
func Place(b Buffer, x, y int, r rune, g GlyphSet) {
	if !b.inBounds(x, y) {
		return
	}
	b[y][x] = composite(b[y][x], r, g)
}

func composite(cur, in rune, g GlyphSet) rune {
	switch {
	case in == g.Cross || cur == g.Cross:
		return g.Cross
	case cur == Blank:
		return in
	case g.IsLine(cur) && g.IsLine(in):
		return g.Cross
	case g.IsCorner(in):
		return in
	case g.IsCorner(cur):
		return cur
	case g.IsText(in):
		return in
	default:
		return cur
	}
}
