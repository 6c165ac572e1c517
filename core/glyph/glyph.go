// Package glyph turns arbitrary Unicode codepoints into strings that are
// always visible when printed to a terminal.
//
// Control characters become Control Pictures or hex placeholders, format
// characters become their bracketed Unicode name, and anything else that
// has no printable glyph becomes a <U+XXXX> placeholder.
package glyph

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// ControlPicturesBase is the first codepoint of the Control Pictures block.
const ControlPicturesBase = 0x2400

// FormatFallback is used for format characters without an assigned name.
const FormatFallback = "<FORMAT>"

const del = 0x7F

// runeName looks up the Unicode character name. Every Cf codepoint is named
// in the current tables, so the FormatFallback branch only triggers if the
// name data lags the category data.
var runeName = runenames.Name

// Visualize returns a visible representation of r. It is defined for every
// rune, including surrogates and unassigned codepoints, and never returns
// the empty string.
func Visualize(r rune) string {
	switch CategoryOf(r) {
	case Control:
		if (r >= 0 && r <= 0x1F) || r == del {
			return string(rune(ControlPicturesBase + r))
		}
		return Hex(r)
	case Format:
		if name := runeName(r); name != "" {
			return "<" + name + ">"
		}
		return FormatFallback
	}

	if unicode.IsPrint(r) {
		return string(r)
	}
	return Hex(r)
}

// Hex formats r as <U+XXXX> with at least four uppercase hex digits.
// Codepoints above U+FFFF widen as needed rather than being truncated.
func Hex(r rune) string {
	return fmt.Sprintf("<U+%04X>", r)
}
