package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"wireframer/internal/wireframe"
)

var errNothingToExport = errors.New("nothing to export")

func (m *model) ascii() string {
	return m.exports.Export(*m.editor.Scene)
}

func (m *model) export(kind ExportKind) (string, error) {
	text := m.ascii()
	if text == "" {
		return "", errNothingToExport
	}

	switch kind {
	case ExportClipboard:
		if err := m.writeClipboard(text); err != nil {
			return "", fmt.Errorf("copy to clipboard: %w", err)
		}
		return "clipboard", nil
	case ExportPNG:
		path, err := m.config.GetSavePath(m.pngName)
		if err != nil {
			return "", err
		}
		return path, exportPNG(path, text, m.editor.Scene.Style)
	default:
		path, err := m.config.GetSavePath(m.txtName)
		if err != nil {
			return "", err
		}
		return path, exportTXT(path, text)
	}
}

func exportTXT(filename, text string) error {
	if err := os.WriteFile(filename, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// exportPNG draws an exported diagram: line and corner glyphs become
// strokes through the cell centre, every other rune is drawn as text.
func exportPNG(filename, text string, style wireframe.Style) error {
	dc, err := renderPNG(text, style)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func renderPNG(text string, style wireframe.Style) (*gg.Context, error) {
	if text == "" {
		return nil, errNothingToExport
	}
	lines := strings.Split(text, "\n")
	grid := make([][]rune, len(lines))
	cols := 0
	for i, line := range lines {
		grid[i] = []rune(line)
		cols = max(cols, len(grid[i]))
	}

	imageWidth := int(float64(cols+2*pngPadding) * charWidth)
	imageHeight := int(float64(len(grid)+2*pngPadding) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.0)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	g := wireframe.Glyphs(style)
	for y, row := range grid {
		for x, r := range row {
			if r == wireframe.Blank {
				continue
			}
			left := float64(x+pngPadding) * charWidth
			top := float64(y+pngPadding) * charHeight
			cx, cy := left+charWidth/2, top+charHeight/2

			a, ok := glyphArms(grid, x, y, g)
			if !ok {
				dc.DrawStringAnchored(string(r), cx, cy, 0.5, 0.5)
				continue
			}
			if a.left {
				dc.DrawLine(left, cy, cx, cy)
			}
			if a.right {
				dc.DrawLine(cx, cy, left+charWidth, cy)
			}
			if a.up {
				dc.DrawLine(cx, top, cx, cy)
			}
			if a.down {
				dc.DrawLine(cx, cy, cx, top+charHeight)
			}
			dc.Stroke()
		}
	}
	return dc, nil
}

type arms struct {
	left, right, up, down bool
}

func runeAt(grid [][]rune, x, y int) rune {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return wireframe.Blank
	}
	return grid[y][x]
}

// glyphArms reports which cell edges a border glyph reaches. ASCII uses
// '+' for every corner and for junctions, so its arms come from the
// neighbouring cells.
func glyphArms(grid [][]rune, x, y int, g wireframe.GlyphSet) (arms, bool) {
	r := runeAt(grid, x, y)
	switch {
	case r == g.H:
		return arms{left: true, right: true}, true
	case r == g.V:
		return arms{up: true, down: true}, true
	case r == g.Cross && g.IsCorner(r):
		joinsH := func(n rune) bool { return n == g.H || n == g.Cross }
		joinsV := func(n rune) bool { return n == g.V || n == g.Cross }
		a := arms{
			left:  joinsH(runeAt(grid, x-1, y)),
			right: joinsH(runeAt(grid, x+1, y)),
			up:    joinsV(runeAt(grid, x, y-1)),
			down:  joinsV(runeAt(grid, x, y+1)),
		}
		if a == (arms{}) {
			// An isolated '+' is a 1x1 junction marker.
			a = arms{left: true, right: true, up: true, down: true}
		}
		return a, true
	case r == g.Cross:
		return arms{left: true, right: true, up: true, down: true}, true
	case r == g.TL:
		return arms{right: true, down: true}, true
	case r == g.TR:
		return arms{left: true, down: true}, true
	case r == g.BL:
		return arms{up: true, right: true}, true
	case r == g.BR:
		return arms{up: true, left: true}, true
	}
	return arms{}, false
}

// printScene writes the export to filename, or stdout when empty.
func printScene(scene *wireframe.Scene, filename string) error {
	text := wireframe.Export(*scene)
	if filename == "" {
		_, err := fmt.Fprintln(os.Stdout, text)
		return err
	}
	if strings.HasSuffix(strings.ToLower(filename), ".png") {
		return exportPNG(filename, text, scene.Style)
	}
	return exportTXT(filename, text)
}
