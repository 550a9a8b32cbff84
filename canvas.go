package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wireframer/internal/wireframe"
)

type cellClass int

const (
	classGrid cellClass = iota
	classShape
	classSelected
	classDrawing
	classMarquee
	classHandle
	classEdit
	classCursor
)

const gridDot = '·'

var (
	styleGrid     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	styleShape    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	styleDrawing  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleMarquee  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleHandle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Reverse(true)
	styleEdit     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Underline(true)
	styleCursor   = lipgloss.NewStyle().Reverse(true)

	cellStyles = map[cellClass]lipgloss.Style{
		classGrid:     styleGrid,
		classShape:    styleShape,
		classSelected: styleSelected,
		classDrawing:  styleDrawing,
		classMarquee:  styleMarquee,
		classHandle:   styleHandle,
		classEdit:     styleEdit,
		classCursor:   styleCursor,
	}
)

// boardLayer is the board as runes plus a display class per cell, before
// styling.
type boardLayer struct {
	runes   wireframe.Buffer
	classes [][]cellClass
}

func (l *boardLayer) set(x, y int, r rune, c cellClass) {
	if y < 0 || y >= len(l.runes) || x < 0 || x >= len(l.runes[y]) {
		return
	}
	l.runes[y][x] = r
	l.classes[y][x] = c
}

func (l *boardLayer) mark(x, y int, c cellClass) {
	if y < 0 || y >= len(l.classes) || x < 0 || x >= len(l.classes[y]) {
		return
	}
	l.classes[y][x] = c
}

// buildBoard composes the live view of the editor: the rendered scene,
// selection, rubber band, resize handles and the text being edited.
func buildBoard(ed *wireframe.Editor) *boardLayer {
	scene := *ed.Scene
	if ed.Edit != nil && !ed.Edit.IsNew {
		// Hide the item being edited; the working value is drawn instead.
		texts := make([]wireframe.TextItem, 0, len(scene.Texts))
		for _, t := range scene.Texts {
			if t.ID != ed.Edit.ID {
				texts = append(texts, t)
			}
		}
		scene.Texts = texts
	}

	layer := &boardLayer{runes: wireframe.Render(scene)}
	layer.classes = make([][]cellClass, len(layer.runes))
	for y, row := range layer.runes {
		layer.classes[y] = make([]cellClass, len(row))
		for x, r := range row {
			if r == wireframe.Blank {
				row[x] = gridDot
			} else {
				layer.classes[y][x] = classShape
			}
		}
	}

	markBox := func(b wireframe.Box, c cellClass) {
		for x := b.X; x < b.X+b.W; x++ {
			layer.mark(x, b.Y, c)
			layer.mark(x, b.Y+b.H-1, c)
		}
		for y := b.Y; y < b.Y+b.H; y++ {
			layer.mark(b.X, y, c)
			layer.mark(b.X+b.W-1, y, c)
		}
	}

	for _, sel := range ed.Selection {
		switch sel.Kind {
		case wireframe.KindBox:
			if b, ok := ed.Scene.Box(sel.ID); ok {
				markBox(b, classSelected)
			}
		case wireframe.KindText:
			if t, ok := ed.Scene.Text(sel.ID); ok {
				for x := t.X; x < t.X+t.Len(); x++ {
					layer.mark(x, t.Y, classSelected)
				}
			}
		}
	}

	if r, ok := ed.PreviewRect(); ok {
		class := classDrawing
		if _, marquee := ed.Drag.(*wireframe.MarqueeDrag); marquee {
			class = classMarquee
		}
		cols := 0
		if len(layer.runes) > 0 {
			cols = len(layer.runes[0])
		}
		outline := wireframe.NewBuffer(len(layer.runes), cols)
		wireframe.DrawBox(outline, wireframe.Box{X: r.X, Y: r.Y, W: r.W, H: r.H}, wireframe.Glyphs(scene.Style))
		for y, row := range outline {
			for x, o := range row {
				if o == wireframe.Blank {
					continue
				}
				if layer.classes[y][x] == classGrid {
					layer.set(x, y, o, class)
				} else {
					layer.mark(x, y, class)
				}
			}
		}
	}

	if b, ok := ed.ResizeTarget(); ok {
		for _, h := range []wireframe.Handle{wireframe.HandleNW, wireframe.HandleNE, wireframe.HandleSW, wireframe.HandleSE} {
			c := h.Corner(b)
			layer.mark(c.X, c.Y, classHandle)
		}
	}

	return layer
}

// drawEdit overlays the working text value and its cursor.
func (l *boardLayer) drawEdit(edit *wireframe.EditState, cursor int) {
	runes := []rune(edit.Value)
	for i, r := range runes {
		l.set(edit.X+i, edit.Y, r, classEdit)
	}
	cursor = max(0, min(cursor, len(runes)))
	r := ' '
	if cursor < len(runes) {
		r = runes[cursor]
	}
	l.set(edit.X+cursor, edit.Y, r, classCursor)
}

// render styles the visible window of the layer, joining runs of cells
// with the same class.
func (l *boardLayer) render(panX, panY, width, height int) []string {
	lines := make([]string, height)
	for sy := 0; sy < height; sy++ {
		y := sy + panY
		if y < 0 || y >= len(l.runes) {
			continue
		}
		var line strings.Builder
		var run []rune
		runClass := classGrid
		flush := func() {
			if len(run) > 0 {
				line.WriteString(cellStyles[runClass].Render(string(run)))
				run = run[:0]
			}
		}
		for sx := 0; sx < width; sx++ {
			x := sx + panX
			if x < 0 || x >= len(l.runes[y]) {
				break
			}
			if c := l.classes[y][x]; c != runClass {
				flush()
				runClass = c
			}
			run = append(run, l.runes[y][x])
		}
		flush()
		lines[sy] = line.String()
	}
	return lines
}
