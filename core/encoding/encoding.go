// Package encoding renders a single codepoint as the byte or code-unit
// sequence of a Unicode encoding form, formatted as uppercase hex.
//
// Encoding is permissive: lone surrogates (U+D800..U+DFFF) are encoded as
// if they were scalar values instead of being replaced with U+FFFD.
package encoding

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/FocuswithJustin/uninear/core/errors"
)

// Scheme selects the encoding form used by Encode.
type Scheme int

const (
	// None disables encoding output.
	None Scheme = iota
	// UTF8 renders bytes of the UTF-8 form.
	UTF8
	// UTF16BE renders big-endian UTF-16 code units.
	UTF16BE
	// UTF32 renders the raw 32-bit codepoint value.
	UTF32
)

var (
	utf16BE = xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)
	utf32BE = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

type schemeInfo struct {
	name  string
	label string
	width int // hex digits per unit
}

var schemes = map[Scheme]schemeInfo{
	UTF8:    {name: "utf8", label: "UTF-8", width: 2},
	UTF16BE: {name: "utf16", label: "UTF-16", width: 4},
	UTF32:   {name: "utf32", label: "UTF-32", width: 8},
}

// Schemes returns the selectable schemes in display order.
func Schemes() []Scheme {
	return []Scheme{UTF8, UTF16BE, UTF32}
}

func (s Scheme) String() string {
	if info, ok := schemes[s]; ok {
		return info.name
	}
	return "none"
}

// ParseScheme resolves one of the names utf8, utf16 or utf32. Matching is
// exact; there is no name for None.
func ParseScheme(name string) (Scheme, error) {
	for _, s := range Schemes() {
		if schemes[s].name == name {
			return s, nil
		}
	}
	return None, errors.NewUnsupported("encoding", fmt.Sprintf("%q (want utf8, utf16 or utf32)", name))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Encode formats r in the given scheme, e.g. "UTF-8: E4 B8 AD".
// It returns the empty string for None.
func Encode(r rune, s Scheme) string {
	info, ok := schemes[s]
	if !ok {
		return ""
	}

	units := Units(r, s)
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%0*X", info.width, u)
	}
	return info.label + ": " + strings.Join(parts, " ")
}

// Units returns the bytes (UTF-8), 16-bit code units (UTF-16BE) or single
// 32-bit unit (UTF-32) that encode r. It returns nil for None.
func Units(r rune, s Scheme) []uint32 {
	switch s {
	case UTF8:
		if utf16.IsSurrogate(r) {
			return []uint32{
				0xE0 | uint32(r>>12),
				0x80 | uint32(r>>6)&0x3F,
				0x80 | uint32(r)&0x3F,
			}
		}
		return split(utf8.AppendRune(nil, r), 1)
	case UTF16BE:
		if utf16.IsSurrogate(r) {
			return []uint32{uint32(r)}
		}
		b, err := utf16BE.NewEncoder().Bytes(utf8.AppendRune(nil, r))
		if err != nil {
			units := utf16.AppendRune(nil, r)
			out := make([]uint32, len(units))
			for i, u := range units {
				out[i] = uint32(u)
			}
			return out
		}
		return split(b, 2)
	case UTF32:
		if utf16.IsSurrogate(r) {
			return []uint32{uint32(r)}
		}
		b, err := utf32BE.NewEncoder().Bytes(utf8.AppendRune(nil, r))
		if err != nil || len(b) != 4 {
			return []uint32{uint32(r)}
		}
		return split(b, 4)
	}
	return nil
}

// split groups big-endian bytes into units of size bytes each.
func split(b []byte, size int) []uint32 {
	out := make([]uint32, 0, len(b)/size)
	for i := 0; i+size <= len(b); i += size {
		var u uint32
		for _, c := range b[i : i+size] {
			u = u<<8 | uint32(c)
		}
		out = append(out, u)
	}
	return out
}
