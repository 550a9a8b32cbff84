package wireframe

import "fmt"

// Drag is the in-progress pointer gesture between pointer-down and
// pointer-up. It is one of *DrawBoxDrag, *MoveDrag, *ResizeDrag or
// *MarqueeDrag.
type Drag interface {
	Origin() Cell
	Pointer() Cell
	setPointer(Cell)
}

type dragCells struct {
	Start, Current Cell
}

func (d *dragCells) Origin() Cell {
	return d.Start
}

func (d *dragCells) Pointer() Cell {
	return d.Current
}

func (d *dragCells) setPointer(c Cell) {
	d.Current = c
}

func (d *dragCells) delta() (int, int) {
	return d.Current.X - d.Start.X, d.Current.Y - d.Start.Y
}

func (d *dragCells) rect() Rect {
	return RectFromCells(d.Start, d.Current)
}

// DrawBoxDrag rubber-bands a new box.
type DrawBoxDrag struct {
	dragCells
}

// MarqueeDrag rubber-bands a selection rectangle.
type MarqueeDrag struct {
	dragCells
}

// MoveDrag moves the selection. Boxes and Texts hold the positions at
// pointer-down; every frame applies the total delta to these snapshots.
type MoveDrag struct {
	dragCells
	Boxes []Box
	Texts []TextItem
}

// ResizeDrag drags one corner of a box while the opposite corner stays put.
type ResizeDrag struct {
	dragCells
	Handle Handle
	Box    Box
}

// Handle is one of the four resize grips of a box.
type Handle int

const (
	HandleNW Handle = iota
	HandleNE
	HandleSW
	HandleSE
)

func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// Corner is the cell the handle sits on for box b.
func (h Handle) Corner(b Box) Cell {
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.W-1, b.Y+b.H-1
	switch h {
	case HandleNW:
		return Cell{x0, y0}
	case HandleNE:
		return Cell{x1, y0}
	case HandleSW:
		return Cell{x0, y1}
	default:
		return Cell{x1, y1}
	}
}

// ResizeBox moves the handle's corner of origin to c. The corner is kept
// on the grid and never crosses the fixed opposite corner.
func ResizeBox(origin Box, h Handle, c Cell, rows, cols int) Box {
	x0, y0 := origin.X, origin.Y
	x1, y1 := origin.X+origin.W-1, origin.Y+origin.H-1

	switch h {
	case HandleNW:
		x0 = clamp(c.X, 0, x1)
		y0 = clamp(c.Y, 0, y1)
	case HandleNE:
		x1 = clamp(c.X, x0, cols-1)
		y0 = clamp(c.Y, 0, y1)
	case HandleSW:
		x0 = clamp(c.X, 0, x1)
		y1 = clamp(c.Y, y0, rows-1)
	default:
		x1 = clamp(c.X, x0, cols-1)
		y1 = clamp(c.Y, y0, rows-1)
	}

	origin.X, origin.Y = x0, y0
	origin.W, origin.H = x1-x0+1, y1-y0+1
	return origin
}
