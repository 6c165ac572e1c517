// Package neighbors renders the window of codepoints around a reference
// character, one line per codepoint.
package neighbors

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/FocuswithJustin/uninear/core/encoding"
	"github.com/FocuswithJustin/uninear/core/errors"
	"github.com/FocuswithJustin/uninear/core/glyph"
	"github.com/FocuswithJustin/uninear/internal/logging"
	"github.com/FocuswithJustin/uninear/internal/validation"
)

// MaxCodepoint is the largest Unicode codepoint.
const MaxCodepoint rune = 0x10FFFF

const (
	baseMarker  = "<= "
	plainMarker = "   "
	columnSep   = "  "
)

// Options selects the optional columns of each line.
type Options struct {
	// Codepoint adds a "U+XXXXXX" column.
	Codepoint bool
	// Scheme adds an encoding column unless it is encoding.None.
	Scheme encoding.Scheme
}

// Bounds returns the inclusive window [base-count, base+count] clamped to
// [0, MaxCodepoint]. A negative count is treated as zero.
func Bounds(base rune, count int) (start, end rune) {
	if count < 0 {
		count = 0
	}
	if count > int(MaxCodepoint) {
		count = int(MaxCodepoint)
	}
	lo := int(base) - count
	hi := int(base) + count
	if lo < 0 {
		lo = 0
	}
	if hi > int(MaxCodepoint) {
		hi = int(MaxCodepoint)
	}
	return rune(lo), rune(hi)
}

// Line formats the output line for cp, marking it if it is the base.
func Line(cp, base rune, opts Options) string {
	var b strings.Builder
	if cp == base {
		b.WriteString(baseMarker)
	} else {
		b.WriteString(plainMarker)
	}
	b.WriteString(glyph.Visualize(cp))
	if opts.Codepoint {
		fmt.Fprintf(&b, "%sU+%06X", columnSep, cp)
	}
	if opts.Scheme != encoding.None {
		b.WriteString(columnSep)
		b.WriteString(encoding.Encode(cp, opts.Scheme))
	}
	return b.String()
}

// Render writes one line per codepoint in the window around base to w, in
// ascending order. Output is buffered; it returns the number of lines
// rendered and stops at the first write or flush failure.
func Render(w io.Writer, base rune, count int, opts Options) (int, error) {
	if err := validation.Count(count); err != nil {
		return 0, err
	}

	start, end := Bounds(base, count)
	logging.RangeComputed(base, start, end, count, "codepoint", opts.Codepoint, "encoding", opts.Scheme.String())

	bw := bufio.NewWriter(w)
	written := 0
	for cp := start; cp <= end; cp++ {
		if _, err := bw.WriteString(Line(cp, base, opts) + "\n"); err != nil {
			logging.RenderFailed(cp, written, err)
			return written, errors.NewIO("write", "output", err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		logging.RenderFailed(end, written, err)
		return written, errors.NewIO("flush", "output", err)
	}
	return written, nil
}
