package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframer/internal/wireframe"
)

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m
}

// screen converts a grid cell into terminal coordinates below the toolbar.
func screen(x, y int) (int, int) {
	return x, y + toolbarLines
}

func TestScreenToCell(t *testing.T) {
	m := newTestModel(t, false)

	x, y, inside := m.screenToCell(3, toolbarLines)
	assert.Equal(t, []int{3, 0}, []int{x, y})
	assert.True(t, inside)

	_, _, inside = m.screenToCell(3, 0)
	assert.False(t, inside, "toolbar row")

	_, _, inside = m.screenToCell(defaultCols, toolbarLines)
	assert.False(t, inside, "right of the grid")

	m.width, m.height = 20, 10
	m.panX, m.panY = 5, 2
	x, y, inside = m.screenToCell(1, toolbarLines+1)
	assert.Equal(t, []int{6, 3}, []int{x, y})
	assert.True(t, inside)
}

func TestPanBounds(t *testing.T) {
	m := newTestModel(t, false)
	m.width, m.height = 20, 10

	m.handlePan("h")
	assert.Equal(t, 0, m.panX)

	m.handlePan("L")
	assert.Equal(t, 4, m.panX)

	for i := 0; i < 100; i++ {
		m.handlePan("J")
	}
	_, h := m.boardSize()
	assert.Equal(t, defaultRows-h, m.panY)
}

func TestMouse_DrawBox(t *testing.T) {
	m := newTestModel(t, false)
	x0, y0 := screen(2, 2)
	x1, y1 := screen(6, 4)

	m = send(t, m, mouse(tea.MouseActionPress, x0, y0))
	assert.Equal(t, wireframe.StateDragging, m.editor.State())

	m = send(t, m, mouse(tea.MouseActionMotion, x1, y1), mouse(tea.MouseActionRelease, x1, y1))
	assert.Equal(t, wireframe.StateIdle, m.editor.State())
	require.Len(t, m.editor.Scene.Boxes, 1)
	b := m.editor.Scene.Boxes[0]
	assert.Equal(t, wireframe.Box{ID: b.ID, X: 2, Y: 2, W: 5, H: 3}, b)
}

func TestMouse_PressOutsideBoardIgnored(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, mouse(tea.MouseActionPress, 2, 0))
	assert.Equal(t, wireframe.StateIdle, m.editor.State())
}

func TestMouse_LeaveEndsDrag(t *testing.T) {
	m := newTestModel(t, false)
	x0, y0 := screen(2, 2)
	x1, y1 := screen(5, 5)

	m = send(t, m,
		mouse(tea.MouseActionPress, x0, y0),
		mouse(tea.MouseActionMotion, x1, y1),
		mouse(tea.MouseActionMotion, x1, 0),
	)
	assert.Equal(t, wireframe.StateIdle, m.editor.State())
	require.Len(t, m.editor.Scene.Boxes, 1)
	assert.Equal(t, 4, m.editor.Scene.Boxes[0].W)
}

func TestMouse_ResizeHandle(t *testing.T) {
	m := newTestModel(t, false)
	box := m.editor.Scene.AddBox(2, 2, 5, 3)
	m = send(t, m, runeKey("s"))
	m.editor.Selection = wireframe.SelectionSet{{Kind: wireframe.KindBox, ID: box.ID}}

	x0, y0 := screen(6, 4)
	x1, y1 := screen(9, 6)
	m = send(t, m,
		mouse(tea.MouseActionPress, x0, y0),
		mouse(tea.MouseActionMotion, x1, y1),
		mouse(tea.MouseActionRelease, x1, y1),
	)
	got, ok := m.editor.Scene.Box(box.ID)
	require.True(t, ok)
	assert.Equal(t, wireframe.Box{ID: box.ID, X: 2, Y: 2, W: 8, H: 5}, got)
}

func TestKeys_ToolsAndSettings(t *testing.T) {
	m := newTestModel(t, false)

	m = send(t, m, runeKey("t"))
	assert.Equal(t, wireframe.ToolText, m.editor.Tool)
	m = send(t, m, runeKey("s"))
	assert.Equal(t, wireframe.ToolSelect, m.editor.Tool)
	m = send(t, m, runeKey("b"))
	assert.Equal(t, wireframe.ToolBox, m.editor.Tool)

	m = send(t, m, runeKey("u"))
	assert.Equal(t, wireframe.StyleUnicode, m.editor.Scene.Style)
	m = send(t, m, runeKey("u"))
	assert.Equal(t, wireframe.StyleASCII, m.editor.Scene.Style)

	m = send(t, m, runeKey("]"), runeKey("{"))
	assert.Equal(t, defaultCols+colStep, m.editor.Scene.Cols)
	assert.Equal(t, defaultRows-rowStep, m.editor.Scene.Rows)

	m = send(t, m, runeKey("?"))
	assert.True(t, m.help)
	assert.Contains(t, m.View(), "wireframer help")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.help)
}

func TestKeys_SelectionNudgeAndDelete(t *testing.T) {
	m := newTestModel(t, true)
	m = send(t, m, runeKey("s"))

	// Click the "Login" label.
	x, y := screen(4, 4)
	m = send(t, m, mouse(tea.MouseActionPress, x, y), mouse(tea.MouseActionRelease, x, y))
	sel, ok := m.editor.Selection.Single()
	require.True(t, ok)
	require.Equal(t, wireframe.KindText, sel.Kind)
	assert.Contains(t, m.inspector(), `"Login"`)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyShiftDown})
	txt, ok := m.editor.Scene.Text(sel.ID)
	require.True(t, ok)
	assert.Equal(t, []int{5, 9}, []int{txt.X, txt.Y})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	_, ok = m.editor.Scene.Text(sel.ID)
	assert.False(t, ok)
	assert.Empty(t, m.editor.Selection)
	assert.Equal(t, "nothing selected", m.inspector())
}

func TestKeys_EditText(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runeKey("t"))

	x, y := screen(10, 20)
	m = send(t, m, mouse(tea.MouseActionPress, x, y))
	require.Equal(t, wireframe.StateEditing, m.editor.State())

	m = send(t, m,
		runeKey("Hi"),
		tea.KeyMsg{Type: tea.KeyLeft},
		runeKey("!"),
		tea.KeyMsg{Type: tea.KeyEnd},
		tea.KeyMsg{Type: tea.KeySpace},
		runeKey("x"),
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	assert.Equal(t, "H!i", m.editor.Edit.Value)
	assert.Equal(t, 3, m.editCursorPos)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.editor.Scene.Texts, 1)
	got := m.editor.Scene.Texts[0]
	assert.Equal(t, wireframe.TextItem{ID: got.ID, X: 10, Y: 20, Value: "H!i"}, got)
	assert.Equal(t, wireframe.StateIdle, m.editor.State())
}

func TestKeys_EditPasteAndCancel(t *testing.T) {
	m := newTestModel(t, false)
	m.readClipboard = func() (string, error) { return "\n  \nfirst\tline\nsecond", nil }
	m = send(t, m, runeKey("t"))

	x, y := screen(1, 1)
	m = send(t, m, mouse(tea.MouseActionPress, x, y), tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, "first line", m.editor.Edit.Value)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.editor.Edit)
	assert.Empty(t, m.editor.Scene.Texts)
}

func TestKeys_EscEndsDrag(t *testing.T) {
	m := newTestModel(t, false)
	x0, y0 := screen(0, 0)
	x1, y1 := screen(3, 3)
	m = send(t, m,
		mouse(tea.MouseActionPress, x0, y0),
		mouse(tea.MouseActionMotion, x1, y1),
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	assert.Equal(t, wireframe.StateIdle, m.editor.State())
	assert.Len(t, m.editor.Scene.Boxes, 1)
}

func TestPasteLabel(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{"plain", "plain"},
		{"\r\n\r\n  two\r\nthree", "  two"},
		{"a\tb", "a b"},
		{`{\rtf1\ansi{\fonttbl\f0 Helvetica;}\f0 Hi \{there\}}`, "Helvetica;Hi {there}"},
		{"<html><body><div>Tom &amp; Jerry</div></body></html>", "Tom & Jerry"},
		{"", ""},
	} {
		assert.Equal(t, tt.want, pasteLabel(tt.in), tt.in)
	}
}

func TestTextEditingHelpers(t *testing.T) {
	s, pos := insertAt("hllo", 1, "e")
	assert.Equal(t, "hello", s)
	assert.Equal(t, 2, pos)

	s, pos = insertAt("ab", 99, "ç")
	assert.Equal(t, "abç", s)
	assert.Equal(t, 3, pos)

	s, pos = deleteBefore("héllo", 2)
	assert.Equal(t, "hllo", s)
	assert.Equal(t, 1, pos)

	s, pos = deleteBefore("abc", 0)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 0, pos)

	assert.Equal(t, "ac", deleteAt("abc", 1))
	assert.Equal(t, "abc", deleteAt("abc", 3))
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, "ab   ", fitWidth("ab", 5))
	assert.Equal(t, "abcd…", fitWidth("abcdefgh", 5))
	assert.Equal(t, "", fitWidth("abc", 0))
}
