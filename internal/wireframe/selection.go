package wireframe

// Kind says which list a Selection refers to.
type Kind int

const (
	KindBox Kind = iota
	KindText
)

func (k Kind) String() string {
	if k == KindText {
		return "text"
	}
	return "box"
}

// Selection references one live box or text item.
type Selection struct {
	Kind Kind
	ID   ID
}

// SelectionSet is an ordered set of selections.
type SelectionSet []Selection

// Has reports membership.
func (s SelectionSet) Has(sel Selection) bool {
	for _, cur := range s {
		if cur == sel {
			return true
		}
	}
	return false
}

// Toggle adds sel if absent, removes it otherwise.
func (s SelectionSet) Toggle(sel Selection) SelectionSet {
	if !s.Has(sel) {
		return append(s, sel)
	}
	out := make(SelectionSet, 0, len(s)-1)
	for _, cur := range s {
		if cur != sel {
			out = append(out, cur)
		}
	}
	return out
}

// Single returns the only member when the set has exactly one.
func (s SelectionSet) Single() (Selection, bool) {
	if len(s) != 1 {
		return Selection{}, false
	}
	return s[0], true
}

// Equal compares order and content.
func (s SelectionSet) Equal(o SelectionSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
