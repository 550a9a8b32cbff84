package main

import (
	"html"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div"))
}

// pasteLabel turns clipboard content into a single-line label: the first
// line that has any text, with markup removed and tabs as spaces.
func pasteLabel(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripTags(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(line, "\t", " ")
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

func stripTags(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			result.WriteRune(r)
		}
	}
	return html.UnescapeString(result.String())
}

// stripRTF drops groups' braces and control words, keeping escaped literals
// and plain text.
func stripRTF(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if next == '\\' || next == '{' || next == '}' {
				result.WriteRune(next)
				i++
				continue
			}
			// Control word: letters, optional numeric parameter, one
			// optional delimiting space.
			j := i + 1
			for j < len(runes) && isASCIILetter(runes[j]) {
				j++
			}
			if string(runes[i+1:j]) == "par" {
				result.WriteRune('\n')
			}
			for j < len(runes) && (runes[j] == '-' || (runes[j] >= '0' && runes[j] <= '9')) {
				j++
			}
			if j < len(runes) && runes[j] == ' ' {
				j++
			}
			i = j - 1
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// fitWidth pads or truncates s to exactly width terminal columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

func insertAt(s string, pos int, ins string) (string, int) {
	runes := []rune(s)
	pos = max(0, min(pos, len(runes)))
	insRunes := []rune(ins)
	out := make([]rune, 0, len(runes)+len(insRunes))
	out = append(out, runes[:pos]...)
	out = append(out, insRunes...)
	out = append(out, runes[pos:]...)
	return string(out), pos + len(insRunes)
}

func deleteBefore(s string, pos int) (string, int) {
	runes := []rune(s)
	pos = max(0, min(pos, len(runes)))
	if pos == 0 {
		return s, 0
	}
	return string(append(runes[:pos-1:pos-1], runes[pos:]...)), pos - 1
}

func deleteAt(s string, pos int) string {
	runes := []rune(s)
	if pos < 0 || pos >= len(runes) {
		return s
	}
	return string(append(runes[:pos:pos], runes[pos+1:]...))
}
