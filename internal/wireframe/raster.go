package wireframe

// DrawBox rasterizes the border of box into b.
func DrawBox(b Buffer, box Box, g GlyphSet) {
	if box.W <= 0 || box.H <= 0 {
		return
	}

	x0, y0 := box.X, box.Y
	x1, y1 := box.X+box.W-1, box.Y+box.H-1

	switch {
	case box.W == 1 && box.H == 1:
		// A 1x1 box is a junction marker.
		Place(b, x0, y0, g.Cross, g)
		return

	// Flat and narrow boxes are a single run: corners at the ends, a line
	// between. Drawing them as four edges would cross the run with itself.
	case box.H == 1:
		for x := x0; x <= x1; x++ {
			r := g.H
			switch x {
			case x0:
				r = g.TL
			case x1:
				r = g.TR
			}
			Place(b, x, y0, r, g)
		}
		return

	case box.W == 1:
		for y := y0; y <= y1; y++ {
			r := g.V
			switch y {
			case y0:
				r = g.TL
			case y1:
				r = g.BL
			}
			Place(b, x0, y, r, g)
		}
		return
	}

	for x := x0 + 1; x <= x1-1; x++ {
		Place(b, x, y0, g.H, g)
		Place(b, x, y1, g.H, g)
	}
	for y := y0 + 1; y <= y1-1; y++ {
		Place(b, x0, y, g.V, g)
		Place(b, x1, y, g.V, g)
	}

	Place(b, x0, y0, g.TL, g)
	Place(b, x1, y0, g.TR, g)
	Place(b, x0, y1, g.BL, g)
	Place(b, x1, y1, g.BR, g)
}

// DrawText writes the runes of t left to right from its anchor.
func DrawText(b Buffer, t TextItem, g GlyphSet) {
	for i, r := range []rune(t.Value) {
		Place(b, t.X+i, t.Y, r, g)
	}
}
