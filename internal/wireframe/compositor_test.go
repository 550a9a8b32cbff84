package wireframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("unicode")
	require.NoError(t, err)
	assert.Equal(t, StyleUnicode, s)

	s, err = ParseStyle(" ASCII ")
	require.NoError(t, err)
	assert.Equal(t, StyleASCII, s)

	_, err = ParseStyle("braille")
	assert.Error(t, err)
}

func TestGlyphs(t *testing.T) {
	g := Glyphs(StyleUnicode)
	assert.Equal(t, []rune{'─', '│', '┌', '┐', '└', '┘', '┼'}, []rune{g.H, g.V, g.TL, g.TR, g.BL, g.BR, g.Cross})

	g = Glyphs(StyleASCII)
	assert.Equal(t, "-|+++++", string([]rune{g.H, g.V, g.TL, g.TR, g.BL, g.BR, g.Cross}))
}

func TestPlace_Precedence(t *testing.T) {
	g := Glyphs(StyleUnicode)
	tests := []struct {
		name     string
		existing rune
		incoming rune
		want     rune
	}{
		{"blank takes anything", Blank, 'x', 'x'},
		{"blank takes line", Blank, g.H, g.H},
		{"cross is sticky under text", g.Cross, 'x', g.Cross},
		{"cross is sticky under corner", g.Cross, g.TL, g.Cross},
		{"incoming cross wins over text", 'x', g.Cross, g.Cross},
		{"h then v", g.H, g.V, g.Cross},
		{"v then h", g.V, g.H, g.Cross},
		{"parallel lines", g.H, g.H, g.Cross},
		{"corner over line", g.H, g.TL, g.TL},
		{"line over corner", g.BR, g.V, g.BR},
		{"corner over corner", g.TL, g.BR, g.BR},
		{"text over line", g.H, 'a', 'a'},
		{"text over corner keeps corner", g.TR, 'a', g.TR},
		{"text over text", 'a', 'b', 'b'},
		{"line over text keeps text", 'a', g.V, 'a'},
		{"blank over text keeps text", 'a', Blank, 'a'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer(1, 1)
			buf[0][0] = tt.existing
			Place(buf, 0, 0, tt.incoming, g)
			assert.Equal(t, string(tt.want), string(buf[0][0]))
		})
	}
}

func TestPlace_JunctionIsCommutative(t *testing.T) {
	for _, style := range []Style{StyleASCII, StyleUnicode} {
		g := Glyphs(style)

		a := NewBuffer(3, 3)
		Place(a, 1, 1, g.H, g)
		Place(a, 1, 1, g.V, g)

		b := NewBuffer(3, 3)
		Place(b, 1, 1, g.V, g)
		Place(b, 1, 1, g.H, g)

		assert.Equal(t, g.Cross, a[1][1], style.String())
		assert.Equal(t, a, b, style.String())
	}
}

func TestPlace_ASCIIScenario(t *testing.T) {
	g := Glyphs(StyleASCII)
	buf := NewBuffer(3, 3)
	Place(buf, 1, 1, '-', g)
	Place(buf, 1, 1, '|', g)
	assert.Equal(t, '+', buf[1][1])
	assert.Equal(t, "\n +", buf.String())
}

func TestPlace_OutOfBoundsIsDropped(t *testing.T) {
	g := Glyphs(StyleASCII)
	buf := NewBuffer(2, 2)
	assert.NotPanics(t, func() {
		Place(buf, -1, 0, 'x', g)
		Place(buf, 0, -1, 'x', g)
		Place(buf, 2, 0, 'x', g)
		Place(buf, 0, 2, 'x', g)
	})
	assert.Equal(t, NewBuffer(2, 2), buf)
	assert.Equal(t, Blank, buf.At(5, 5))
}
