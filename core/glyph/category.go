package glyph

import "unicode"

// Category is the coarse general-category class the visualizer dispatches on.
type Category int

const (
	// Other covers every general category that is not Cc or Cf.
	Other Category = iota
	// Control is the Cc general category.
	Control
	// Format is the Cf general category.
	Format
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Control:
		return "Control"
	case Format:
		return "Format"
	default:
		return "Other"
	}
}

// CategoryOf maps r's Unicode general category onto a Category.
// This is the only place that consults the category tables.
func CategoryOf(r rune) Category {
	switch {
	case unicode.Is(unicode.Cc, r):
		return Control
	case unicode.Is(unicode.Cf, r):
		return Format
	default:
		return Other
	}
}
