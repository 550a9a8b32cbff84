package main

func (m *model) handlePan(key string) {
	speed := m.getMoveSpeed(key)
	switch key {
	case "h", "H":
		m.panX -= speed
	case "l", "L":
		m.panX += speed
	case "k", "K":
		m.panY -= speed
	case "j", "J":
		m.panY += speed
	}
	m.ensurePanInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J":
		return 4
	default:
		return 1
	}
}

// boardSize is the number of grid cells visible on screen.
func (m *model) boardSize() (int, int) {
	w := m.width
	h := m.height - toolbarLines - statusLines
	return max(w, 1), max(h, 1)
}

// ensurePanInBounds keeps the viewport over the grid; a grid smaller than
// the screen is never panned.
func (m *model) ensurePanInBounds() {
	w, h := m.boardSize()
	scene := m.editor.Scene
	m.panX = max(0, min(m.panX, scene.Cols-w))
	m.panY = max(0, min(m.panY, scene.Rows-h))
}

// screenToCell maps a terminal position to a grid cell. ok is false when
// the position is outside the board.
func (m *model) screenToCell(x, y int) (int, int, bool) {
	cx, cy := x+m.panX, y-toolbarLines+m.panY
	w, h := m.boardSize()
	scene := m.editor.Scene
	inside := x >= 0 && x < w && y >= toolbarLines && y < toolbarLines+h &&
		cx < scene.Cols && cy < scene.Rows
	return cx, cy, inside
}
