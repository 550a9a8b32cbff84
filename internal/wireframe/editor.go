package wireframe

import "strings"

// Tool is the active drawing tool.
type Tool int

const (
	ToolBox Tool = iota
	ToolText
	ToolSelect
)

func (t Tool) String() string {
	switch t {
	case ToolText:
		return "text"
	case ToolSelect:
		return "select"
	default:
		return "box"
	}
}

// Key is a keyboard key the editor reacts to while idle.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyDelete
)

// Grid size limits applied by SetGrid.
const (
	MinRows = 8
	MaxRows = 200
	MinCols = 16
	MaxCols = 400
)

// Event is an input to Editor.Handle.
type Event interface {
	isEvent()
}

type (
	// PointerDown presses the pointer on a cell of the board.
	PointerDown struct {
		Cell  Cell
		Shift bool
	}
	// PointerMove moves the pointer, pressed or not.
	PointerMove struct {
		Cell Cell
	}
	// PointerUp releases the pointer.
	PointerUp struct{}
	// PointerLeave is the pointer leaving the board. It ends a drag like PointerUp.
	PointerLeave struct{}
	// HandleDown presses a resize handle of the single selected box.
	HandleDown struct {
		Handle Handle
		Cell   Cell
	}
	// KeyPress is a key pressed outside text editing.
	KeyPress struct {
		Key   Key
		Shift bool
	}
	// EditInput replaces the working value of the current edit.
	EditInput struct {
		Value string
	}
	EditCommit   struct{}
	EditCancel   struct{}
	EditSelected struct{}
	SetTool      struct{ Tool Tool }
	SetStyle     struct{ Style Style }
	SetGrid      struct{ Rows, Cols int }
	// DeleteSelected removes the selection regardless of key state.
	DeleteSelected struct{}
	ClearSelection struct{}
)

func (PointerDown) isEvent() {}

func (PointerMove) isEvent() {}

func (PointerUp) isEvent() {}

func (PointerLeave) isEvent() {}

func (HandleDown) isEvent() {}

func (KeyPress) isEvent() {}

func (EditInput) isEvent() {}

func (EditCommit) isEvent() {}

func (EditCancel) isEvent() {}

func (EditSelected) isEvent() {}

func (SetTool) isEvent() {}

func (SetStyle) isEvent() {}

func (SetGrid) isEvent() {}

func (DeleteSelected) isEvent() {}

func (ClearSelection) isEvent() {}

// Effect reports what an event changed.
type Effect uint8

const (
	EffectScene Effect = 1 << iota
	EffectSelection
	EffectDrag
	EffectEdit
	EffectTool

	EffectNone Effect = 0
)

// Has reports whether all bits of o are set.
func (e Effect) Has(o Effect) bool {
	return e&o == o && o != 0
}

// State is the editor's interaction state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateEditing:
		return "editing"
	default:
		return "idle"
	}
}

// Editor applies pointer and keyboard events to a scene.
type Editor struct {
	Scene     *Scene
	Tool      Tool
	Selection SelectionSet
	Drag      Drag
	Edit      *EditState
}

// NewEditor wraps scene with the box tool active.
func NewEditor(scene *Scene) *Editor {
	return &Editor{Scene: scene, Tool: ToolBox}
}

// State derives the current interaction state.
func (e *Editor) State() State {
	switch {
	case e.Edit != nil:
		return StateEditing
	case e.Drag != nil:
		return StateDragging
	default:
		return StateIdle
	}
}

// Handle applies ev and reports what changed.
func (e *Editor) Handle(ev Event) Effect {
	switch ev := ev.(type) {
	case PointerDown:
		return e.pointerDown(e.clampCell(ev.Cell), ev.Shift)
	case PointerMove:
		return e.pointerMove(e.clampCell(ev.Cell))
	case PointerUp, PointerLeave:
		return e.pointerUp()
	case HandleDown:
		return e.handleDown(ev.Handle, e.clampCell(ev.Cell))
	case KeyPress:
		return e.keyPress(ev.Key, ev.Shift)
	case EditInput:
		if e.Edit == nil {
			return EffectNone
		}
		e.Edit.Value = ev.Value
		return EffectEdit
	case EditCommit:
		return e.commitEdit()
	case EditCancel:
		if e.Edit == nil {
			return EffectNone
		}
		e.Edit = nil
		return EffectEdit
	case EditSelected:
		return e.editSelected()
	case SetTool:
		if e.Tool == ev.Tool {
			return EffectNone
		}
		e.Tool = ev.Tool
		return EffectTool
	case SetStyle:
		if e.Scene.Style == ev.Style {
			return EffectNone
		}
		e.Scene.Style = ev.Style
		return EffectScene
	case SetGrid:
		rows := clamp(ev.Rows, MinRows, MaxRows)
		cols := clamp(ev.Cols, MinCols, MaxCols)
		if rows == e.Scene.Rows && cols == e.Scene.Cols {
			return EffectNone
		}
		e.Scene.Rows, e.Scene.Cols = rows, cols
		e.Scene.fitToGrid()
		return EffectScene
	case DeleteSelected:
		return e.removeSelected()
	case ClearSelection:
		if e.Drag != nil {
			return EffectNone
		}
		return e.setSelection(nil)
	}
	return EffectNone
}

// PreviewRect is the rubber band of a draw-box or marquee drag.
func (e *Editor) PreviewRect() (Rect, bool) {
	switch d := e.Drag.(type) {
	case *DrawBoxDrag:
		return d.rect(), true
	case *MarqueeDrag:
		return d.rect(), true
	}
	return Rect{}, false
}

// ResizeTarget is the box whose resize handles are shown: the select tool
// is active and exactly one box is selected.
func (e *Editor) ResizeTarget() (Box, bool) {
	if e.Tool != ToolSelect {
		return Box{}, false
	}
	sel, ok := e.Selection.Single()
	if !ok || sel.Kind != KindBox {
		return Box{}, false
	}
	return e.Scene.Box(sel.ID)
}

// HandleAt returns the resize handle of the resize target sitting on c.
func (e *Editor) HandleAt(c Cell) (Handle, bool) {
	box, ok := e.ResizeTarget()
	if !ok {
		return 0, false
	}
	for _, h := range []Handle{HandleNW, HandleNE, HandleSW, HandleSE} {
		if h.Corner(box) == c {
			return h, true
		}
	}
	return 0, false
}

func (e *Editor) clampCell(c Cell) Cell {
	return Cell{X: clamp(c.X, 0, e.Scene.Cols-1), Y: clamp(c.Y, 0, e.Scene.Rows-1)}
}

func (e *Editor) setSelection(sel SelectionSet) Effect {
	if e.Selection.Equal(sel) {
		return EffectNone
	}
	e.Selection = sel
	return EffectSelection
}

func (e *Editor) pointerDown(c Cell, shift bool) Effect {
	var fx Effect
	if e.Edit != nil {
		fx |= e.commitEdit()
	}
	if e.Drag != nil {
		e.Drag = nil
		fx |= EffectDrag
	}

	switch e.Tool {
	case ToolBox:
		fx |= e.setSelection(nil)
		e.Drag = &DrawBoxDrag{dragCells{Start: c, Current: c}}
		return fx | EffectDrag

	case ToolText:
		if hit, ok := e.Scene.HitTest(c); ok && hit.Kind == KindText {
			t, _ := e.Scene.Text(hit.ID)
			fx |= e.beginEdit(EditState{ID: t.ID, X: t.X, Y: t.Y, Value: t.Value})
		} else {
			fx |= e.beginEdit(EditState{X: c.X, Y: c.Y, IsNew: true})
		}
		return fx | e.setSelection(nil)
	}

	hit, ok := e.Scene.HitTest(c)
	if !ok {
		if !shift {
			fx |= e.setSelection(nil)
		}
		e.Drag = &MarqueeDrag{dragCells{Start: c, Current: c}}
		return fx | EffectDrag
	}
	if shift {
		return fx | e.setSelection(e.Selection.Toggle(hit))
	}
	if !e.Selection.Has(hit) {
		fx |= e.setSelection(SelectionSet{hit})
	}
	return fx | e.startMove(c)
}

func (e *Editor) startMove(c Cell) Effect {
	d := &MoveDrag{dragCells: dragCells{Start: c, Current: c}}
	for _, b := range e.Scene.Boxes {
		if e.Selection.Has(Selection{Kind: KindBox, ID: b.ID}) {
			d.Boxes = append(d.Boxes, b)
		}
	}
	for _, t := range e.Scene.Texts {
		if e.Selection.Has(Selection{Kind: KindText, ID: t.ID}) {
			d.Texts = append(d.Texts, t)
		}
	}
	e.Drag = d
	return EffectDrag
}

func (e *Editor) handleDown(h Handle, c Cell) Effect {
	box, ok := e.ResizeTarget()
	if !ok || e.Edit != nil {
		return EffectNone
	}
	e.Drag = &ResizeDrag{dragCells: dragCells{Start: c, Current: c}, Handle: h, Box: box}
	return EffectDrag
}

func (e *Editor) pointerMove(c Cell) Effect {
	if e.Drag == nil || e.Drag.Pointer() == c {
		return EffectNone
	}
	e.Drag.setPointer(c)
	fx := EffectDrag
	switch d := e.Drag.(type) {
	case *MoveDrag:
		fx |= e.applyMove(d)
	case *ResizeDrag:
		fx |= e.applyResize(d)
	}
	return fx
}

func (e *Editor) pointerUp() Effect {
	if e.Drag == nil {
		return EffectNone
	}
	fx := EffectDrag
	switch d := e.Drag.(type) {
	case *DrawBoxDrag:
		r := d.rect()
		x := clamp(r.X, 0, e.Scene.Cols-1)
		y := clamp(r.Y, 0, e.Scene.Rows-1)
		box := e.Scene.AddBox(x, y, clamp(r.W, 1, e.Scene.Cols-x), clamp(r.H, 1, e.Scene.Rows-y))
		fx |= EffectScene | e.setSelection(SelectionSet{{Kind: KindBox, ID: box.ID}})
	case *MoveDrag:
		fx |= e.applyMove(d)
	case *ResizeDrag:
		fx |= e.applyResize(d)
	case *MarqueeDrag:
		fx |= e.setSelection(e.marqueeSelect(d.rect()))
	}
	e.Drag = nil
	return fx
}

// applyMove places every snapshot at its pre-drag position plus the total
// drag delta. Reapplying with the same pointer is a no-op.
func (e *Editor) applyMove(d *MoveDrag) Effect {
	dx, dy := d.delta()
	fx := EffectNone
	for _, origin := range d.Boxes {
		i := e.Scene.boxIndex(origin.ID)
		if i < 0 {
			continue
		}
		b := &e.Scene.Boxes[i]
		x, y := e.Scene.clampBoxPos(origin.X+dx, origin.Y+dy, origin.W, origin.H)
		if b.X != x || b.Y != y {
			b.X, b.Y = x, y
			fx = EffectScene
		}
	}
	for _, origin := range d.Texts {
		i := e.Scene.textIndex(origin.ID)
		if i < 0 {
			continue
		}
		t := &e.Scene.Texts[i]
		x, y := e.Scene.clampTextPos(origin.X+dx, origin.Y+dy)
		if t.X != x || t.Y != y {
			t.X, t.Y = x, y
			fx = EffectScene
		}
	}
	return fx
}

func (e *Editor) applyResize(d *ResizeDrag) Effect {
	i := e.Scene.boxIndex(d.Box.ID)
	if i < 0 {
		return EffectNone
	}
	next := ResizeBox(d.Box, d.Handle, d.Current, e.Scene.Rows, e.Scene.Cols)
	if e.Scene.Boxes[i] == next {
		return EffectNone
	}
	e.Scene.Boxes[i] = next
	return EffectScene
}

func (e *Editor) marqueeSelect(r Rect) SelectionSet {
	var sel SelectionSet
	for _, b := range e.Scene.Boxes {
		if r.Overlaps(Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}) {
			sel = append(sel, Selection{Kind: KindBox, ID: b.ID})
		}
	}
	for _, t := range e.Scene.Texts {
		if r.Overlaps(Rect{X: t.X, Y: t.Y, W: t.Len(), H: 1}) {
			sel = append(sel, Selection{Kind: KindText, ID: t.ID})
		}
	}
	return sel
}

func (e *Editor) keyPress(k Key, shift bool) Effect {
	if e.State() != StateIdle || len(e.Selection) == 0 {
		return EffectNone
	}
	step := 1
	if shift {
		step = 5
	}
	switch k {
	case KeyBackspace, KeyDelete:
		return e.removeSelected()
	case KeyLeft:
		return e.nudge(-step, 0)
	case KeyRight:
		return e.nudge(step, 0)
	case KeyUp:
		return e.nudge(0, -step)
	case KeyDown:
		return e.nudge(0, step)
	}
	return EffectNone
}

func (e *Editor) nudge(dx, dy int) Effect {
	fx := EffectNone
	for i := range e.Scene.Boxes {
		b := &e.Scene.Boxes[i]
		if !e.Selection.Has(Selection{Kind: KindBox, ID: b.ID}) {
			continue
		}
		x, y := e.Scene.clampBoxPos(b.X+dx, b.Y+dy, b.W, b.H)
		if b.X != x || b.Y != y {
			b.X, b.Y = x, y
			fx = EffectScene
		}
	}
	for i := range e.Scene.Texts {
		t := &e.Scene.Texts[i]
		if !e.Selection.Has(Selection{Kind: KindText, ID: t.ID}) {
			continue
		}
		x, y := e.Scene.clampTextPos(t.X+dx, t.Y+dy)
		if t.X != x || t.Y != y {
			t.X, t.Y = x, y
			fx = EffectScene
		}
	}
	return fx
}

func (e *Editor) removeSelected() Effect {
	if len(e.Selection) == 0 {
		return EffectNone
	}
	e.Scene.Remove(e.Selection)
	e.Selection = nil
	return EffectScene | EffectSelection
}

func (e *Editor) beginEdit(ed EditState) Effect {
	if ed.IsNew {
		ed.ID = e.Scene.NextID()
	}
	e.Edit = &ed
	fx := EffectEdit
	if e.Tool != ToolText {
		e.Tool = ToolText
		fx |= EffectTool
	}
	return fx
}

func (e *Editor) editSelected() Effect {
	sel, ok := e.Selection.Single()
	if !ok || sel.Kind != KindText || e.Drag != nil {
		return EffectNone
	}
	t, ok := e.Scene.Text(sel.ID)
	if !ok {
		return EffectNone
	}
	fx := EffectNone
	if e.Edit != nil {
		fx = e.commitEdit()
	}
	return fx | e.beginEdit(EditState{ID: t.ID, X: t.X, Y: t.Y, Value: t.Value})
}

// commitEdit stores the working value. A blank value discards the edit and
// leaves any existing item untouched.
func (e *Editor) commitEdit() Effect {
	if e.Edit == nil {
		return EffectNone
	}
	ed := *e.Edit
	e.Edit = nil
	v := CleanText(ed.Value)
	if strings.TrimSpace(v) == "" {
		return EffectEdit
	}

	entry := TextItem{ID: ed.ID, X: ed.X, Y: ed.Y, Value: v}
	if i := e.Scene.textIndex(ed.ID); i >= 0 {
		e.Scene.Texts[i] = entry
	} else {
		e.Scene.Texts = append(e.Scene.Texts, entry)
	}
	return EffectEdit | EffectScene | e.setSelection(SelectionSet{{Kind: KindText, ID: ed.ID}})
}
