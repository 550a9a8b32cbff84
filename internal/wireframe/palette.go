package wireframe

import (
	"fmt"
	"strings"
)

// Style selects the glyph set used when rasterizing a scene.
type Style int

const (
	StyleASCII Style = iota
	StyleUnicode
)

func (s Style) String() string {
	switch s {
	case StyleUnicode:
		return "unicode"
	default:
		return "ascii"
	}
}

// ParseStyle maps a style name to a Style. Unknown names are an error.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "":
		return StyleASCII, nil
	case "unicode":
		return StyleUnicode, nil
	default:
		return StyleASCII, fmt.Errorf("unknown style %q (want ascii or unicode)", name)
	}
}

// GlyphSet holds the seven glyphs a style draws with.
type GlyphSet struct {
	H, V           rune
	TL, TR, BL, BR rune
	Cross          rune
}

var (
	asciiGlyphs   = GlyphSet{H: '-', V: '|', TL: '+', TR: '+', BL: '+', BR: '+', Cross: '+'}
	unicodeGlyphs = GlyphSet{H: '─', V: '│', TL: '┌', TR: '┐', BL: '└', BR: '┘', Cross: '┼'}
)

// Glyphs returns the glyph set for style.
func Glyphs(style Style) GlyphSet {
	if style == StyleUnicode {
		return unicodeGlyphs
	}
	return asciiGlyphs
}

// IsLine reports whether r is the horizontal or vertical glyph.
func (g GlyphSet) IsLine(r rune) bool {
	return r == g.H || r == g.V
}

// IsCorner reports whether r is one of the four corner glyphs.
func (g GlyphSet) IsCorner(r rune) bool {
	return r == g.TL || r == g.TR || r == g.BL || r == g.BR
}

// IsText reports whether r is neither blank nor one of the style's glyphs.
func (g GlyphSet) IsText(r rune) bool {
	return !(r == Blank || g.IsLine(r) || g.IsCorner(r) || r == g.Cross)
}
