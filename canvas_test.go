package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframer/internal/wireframe"
)

func TestBuildBoard_GridAndShapes(t *testing.T) {
	s := wireframe.NewScene(8, 16, wireframe.StyleASCII)
	s.AddBox(0, 0, 4, 3)
	layer := buildBoard(wireframe.NewEditor(s))

	require.Len(t, layer.runes, 8)
	assert.Equal(t, "+--+"+strings.Repeat(string(gridDot), 12), string(layer.runes[0]))
	assert.Equal(t, classShape, layer.classes[0][0])
	assert.Equal(t, classGrid, layer.classes[1][1])
	assert.Equal(t, gridDot, layer.runes[1][1])
}

func TestBuildBoard_SelectionAndHandles(t *testing.T) {
	s := wireframe.NewScene(8, 16, wireframe.StyleASCII)
	box := s.AddBox(1, 1, 5, 4)
	txt := s.AddText(8, 1, "Hi")
	ed := wireframe.NewEditor(s)
	ed.Selection = wireframe.SelectionSet{{Kind: wireframe.KindBox, ID: box.ID}, {Kind: wireframe.KindText, ID: txt.ID}}

	layer := buildBoard(ed)
	assert.Equal(t, classSelected, layer.classes[1][3])
	assert.Equal(t, classSelected, layer.classes[2][1])
	assert.Equal(t, classGrid, layer.classes[2][2])
	assert.Equal(t, classSelected, layer.classes[1][9])

	ed.Handle(wireframe.SetTool{Tool: wireframe.ToolSelect})
	layer = buildBoard(ed)
	assert.NotEqual(t, classHandle, layer.classes[1][1], "no handles for a multi-selection")

	ed.Selection = wireframe.SelectionSet{{Kind: wireframe.KindBox, ID: box.ID}}
	layer = buildBoard(ed)
	for _, c := range []wireframe.Cell{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 4}, {X: 5, Y: 4}} {
		assert.Equal(t, classHandle, layer.classes[c.Y][c.X], c)
	}
}

func TestBuildBoard_Preview(t *testing.T) {
	s := wireframe.NewScene(8, 16, wireframe.StyleASCII)
	ed := wireframe.NewEditor(s)
	ed.Handle(wireframe.PointerDown{Cell: wireframe.Cell{X: 6, Y: 4}})
	ed.Handle(wireframe.PointerMove{Cell: wireframe.Cell{X: 2, Y: 2}})

	layer := buildBoard(ed)
	assert.Equal(t, '+', layer.runes[2][2])
	assert.Equal(t, classDrawing, layer.classes[2][2])
	assert.Equal(t, '|', layer.runes[3][6])
	assert.Equal(t, classGrid, layer.classes[3][3])

	ed.Handle(wireframe.PointerUp{})
	ed.Handle(wireframe.SetTool{Tool: wireframe.ToolSelect})
	ed.Handle(wireframe.PointerDown{Cell: wireframe.Cell{X: 10, Y: 0}})
	ed.Handle(wireframe.PointerMove{Cell: wireframe.Cell{X: 12, Y: 2}})
	layer = buildBoard(ed)
	assert.Equal(t, classMarquee, layer.classes[0][10])
	assert.Equal(t, classMarquee, layer.classes[2][12])
}

func TestBuildBoard_EditHidesOriginal(t *testing.T) {
	s := wireframe.NewScene(8, 16, wireframe.StyleASCII)
	s.AddText(2, 2, "Hello")
	ed := wireframe.NewEditor(s)
	ed.Handle(wireframe.SetTool{Tool: wireframe.ToolText})
	ed.Handle(wireframe.PointerDown{Cell: wireframe.Cell{X: 3, Y: 2}})
	require.NotNil(t, ed.Edit)
	ed.Handle(wireframe.EditInput{Value: "Hi"})

	layer := buildBoard(ed)
	assert.Equal(t, gridDot, layer.runes[2][4], "original text hidden")

	layer.drawEdit(ed.Edit, 1)
	assert.Equal(t, 'H', layer.runes[2][2])
	assert.Equal(t, classEdit, layer.classes[2][2])
	assert.Equal(t, classCursor, layer.classes[2][3])
}

func TestBoardRender_Window(t *testing.T) {
	s := wireframe.NewScene(8, 16, wireframe.StyleASCII)
	s.AddBox(0, 0, 4, 3)
	layer := buildBoard(wireframe.NewEditor(s))

	lines := layer.render(1, 0, 5, 10)
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "--+")
	assert.Empty(t, lines[9], "past the last row")
}
