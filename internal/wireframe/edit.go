package wireframe

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// EditState is a text value being typed. IsNew distinguishes creating a
// text item on commit from updating the item with ID.
type EditState struct {
	ID    ID
	X, Y  int
	Value string
	IsNew bool
}

// CleanText prepares a typed value for storage: line breaks and other
// control characters are removed and the result is NFC-composed so that
// combining marks share their base rune's cell.
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return norm.NFC.String(s)
}
