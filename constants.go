package main

type ExportKind int

const (
	ExportTXT ExportKind = iota
	ExportPNG
	ExportClipboard
)

func (k ExportKind) String() string {
	switch k {
	case ExportPNG:
		return "png"
	case ExportClipboard:
		return "clipboard"
	default:
		return "txt"
	}
}

const (
	defaultRows = 28
	defaultCols = 64

	// Grid size steps for the [ ] { } keys.
	colStep = 4
	rowStep = 2

	// Screen rows taken by the toolbar and the status line.
	toolbarLines = 1
	statusLines  = 1

	// PNG cell size in pixels.
	charWidth  = 8.0
	charHeight = 16.0
	fontSize   = 12.0
	pngPadding = 2

	defaultTXTName = "wireframe.txt"
	defaultPNGName = "wireframe.png"
)
