package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"wireframer/internal/wireframe"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensurePanInBounds()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.editor.Edit != nil {
			m.handleEditKey(msg)
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) apply(ev wireframe.Event) wireframe.Effect {
	before := m.editor.Edit
	fx := m.editor.Handle(ev)
	if m.editor.Edit != nil && m.editor.Edit != before {
		m.editCursorPos = len([]rune(m.editor.Edit.Value))
	}
	if fx.Has(wireframe.EffectScene) {
		m.errorMessage = ""
	}
	return fx
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	x, y, inside := m.screenToCell(msg.X, msg.Y)
	cell := wireframe.Cell{X: x, Y: y}
	dragging := m.editor.Drag != nil

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if dragging {
			m.apply(wireframe.PointerMove{Cell: cell})
			return
		}
		if !inside {
			return
		}
		m.successMessage = ""
		if h, ok := m.editor.HandleAt(cell); ok {
			m.apply(wireframe.HandleDown{Handle: h, Cell: cell})
			return
		}
		m.apply(wireframe.PointerDown{Cell: cell, Shift: msg.Shift})

	case tea.MouseActionMotion:
		if !dragging {
			return
		}
		if !inside {
			m.apply(wireframe.PointerLeave{})
			return
		}
		m.apply(wireframe.PointerMove{Cell: cell})

	case tea.MouseActionRelease:
		if !dragging {
			return
		}
		if inside {
			m.apply(wireframe.PointerMove{Cell: cell})
		}
		m.apply(wireframe.PointerUp{})
	}
}

var arrowKeys = map[string]struct {
	key   wireframe.Key
	shift bool
}{
	"left":        {wireframe.KeyLeft, false},
	"right":       {wireframe.KeyRight, false},
	"up":          {wireframe.KeyUp, false},
	"down":        {wireframe.KeyDown, false},
	"shift+left":  {wireframe.KeyLeft, true},
	"shift+right": {wireframe.KeyRight, true},
	"shift+up":    {wireframe.KeyUp, true},
	"shift+down":  {wireframe.KeyDown, true},
	"backspace":   {wireframe.KeyBackspace, false},
	"delete":      {wireframe.KeyDelete, false},
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.editor.Drag != nil {
		if key == "esc" {
			m.apply(wireframe.PointerLeave{})
		}
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	if k, ok := arrowKeys[key]; ok {
		m.apply(wireframe.KeyPress{Key: k.key, Shift: k.shift})
		return m, nil
	}

	scene := m.editor.Scene
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true
	case "b":
		m.apply(wireframe.SetTool{Tool: wireframe.ToolBox})
	case "t":
		m.apply(wireframe.SetTool{Tool: wireframe.ToolText})
	case "s":
		m.apply(wireframe.SetTool{Tool: wireframe.ToolSelect})
	case "u":
		next := wireframe.StyleUnicode
		if scene.Style == wireframe.StyleUnicode {
			next = wireframe.StyleASCII
		}
		m.apply(wireframe.SetStyle{Style: next})
	case "e":
		m.apply(wireframe.EditSelected{})
	case "x":
		m.apply(wireframe.DeleteSelected{})
	case "esc":
		m.apply(wireframe.ClearSelection{})
	case "[":
		m.apply(wireframe.SetGrid{Rows: scene.Rows, Cols: scene.Cols - colStep})
		m.ensurePanInBounds()
	case "]":
		m.apply(wireframe.SetGrid{Rows: scene.Rows, Cols: scene.Cols + colStep})
	case "{":
		m.apply(wireframe.SetGrid{Rows: scene.Rows - rowStep, Cols: scene.Cols})
		m.ensurePanInBounds()
	case "}":
		m.apply(wireframe.SetGrid{Rows: scene.Rows + rowStep, Cols: scene.Cols})
	case "h", "j", "k", "l", "H", "J", "K", "L":
		m.handlePan(key)
	case "y":
		m.runExport(ExportClipboard)
	case "ctrl+s":
		m.runExport(ExportTXT)
	case "ctrl+p":
		m.runExport(ExportPNG)
	}
	return m, nil
}

func (m *model) runExport(kind ExportKind) {
	m.errorMessage, m.successMessage = "", ""
	dest, err := m.export(kind)
	if errors.Is(err, errNothingToExport) {
		m.errorMessage = "Nothing to export"
		return
	}
	if err != nil {
		m.errorMessage = err.Error()
		m.log.Error("export failed", "kind", kind.String(), "err", err)
		return
	}
	if kind == ExportClipboard {
		m.successMessage = "Copied to clipboard"
	} else {
		m.successMessage = "Saved " + dest
	}
	m.log.Info("exported", "kind", kind.String(), "dest", dest)
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	value := m.editor.Edit.Value
	pos := m.editCursorPos

	switch msg.Type {
	case tea.KeyEnter:
		m.apply(wireframe.EditCommit{})
		return
	case tea.KeyEsc:
		m.apply(wireframe.EditCancel{})
		return
	case tea.KeyCtrlC:
		m.apply(wireframe.EditCancel{})
		return
	case tea.KeyBackspace:
		value, pos = deleteBefore(value, pos)
	case tea.KeyDelete:
		value = deleteAt(value, pos)
	case tea.KeyLeft:
		pos = max(0, pos-1)
	case tea.KeyRight:
		pos = min(len([]rune(value)), pos+1)
	case tea.KeyHome:
		pos = 0
	case tea.KeyEnd:
		pos = len([]rune(value))
	case tea.KeyCtrlV:
		text, err := m.readClipboard()
		if err != nil {
			m.errorMessage = "Paste failed: " + err.Error()
			m.log.Warn("clipboard read failed", "err", err)
			return
		}
		value, pos = insertAt(value, pos, pasteLabel(text))
	case tea.KeySpace:
		value, pos = insertAt(value, pos, " ")
	case tea.KeyRunes:
		value, pos = insertAt(value, pos, string(msg.Runes))
	default:
		return
	}

	m.editCursorPos = pos
	if value != m.editor.Edit.Value {
		m.apply(wireframe.EditInput{Value: value})
	}
}
