package wireframe

import (
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Render rasterizes the scene into a fresh buffer of
// (Rows+MarginBottom)×(Cols+MarginRight). Boxes are drawn beneath texts.
func Render(s Scene) Buffer {
	if s.Rows <= 0 || s.Cols <= 0 {
		return NewBuffer(0, 0)
	}
	buf := NewBuffer(s.Rows+max(0, s.MarginBottom), s.Cols+max(0, s.MarginRight))
	g := Glyphs(s.Style)
	for _, b := range s.Boxes {
		DrawBox(buf, b, g)
	}
	for _, t := range s.Texts {
		DrawText(buf, t, g)
	}
	return buf
}

// Export renders the scene to plain text. Trailing spaces are stripped
// from every line and trailing empty lines are dropped. A scene with a
// non-positive size exports to "".
func Export(s Scene) string {
	return Render(s).String()
}

// String joins the buffer rows with trailing whitespace trimmed.
func (b Buffer) String() string {
	lines := make([]string, len(b))
	for y, row := range b {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	n := len(lines)
	for n > 0 && lines[n-1] == "" {
		n--
	}
	return strings.Join(lines[:n], "\n")
}

// ExportCache remembers the last export and reuses it while the scene is
// structurally unchanged.
type ExportCache struct {
	hash   uint64
	valid  bool
	output string
}

// Export returns Export(s), recomputing only when the scene hash moves.
func (c *ExportCache) Export(s Scene) string {
	h, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	if err != nil {
		c.valid = false
		return Export(s)
	}
	if c.valid && h == c.hash {
		return c.output
	}
	c.hash, c.output, c.valid = h, Export(s), true
	return c.output
}
