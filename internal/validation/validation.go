// Package validation checks user-supplied CLI arguments before they reach
// the range driver.
package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"

	uerrors "github.com/FocuswithJustin/uninear/core/errors"
)

// Common validation errors.
var (
	ErrEmptyChar     = errors.New("reference character is empty")
	ErrTooManyChars  = errors.New("reference character must be a single character")
	ErrInvalidUTF8   = errors.New("reference character is not valid UTF-8")
	ErrNegativeCount = errors.New("count must not be negative")
)

// ReferenceChar validates that s holds exactly one codepoint and returns it.
// Multi-codepoint grapheme clusters (e.g. "e" + U+0301) are rejected.
func ReferenceChar(s string) (rune, error) {
	if s == "" {
		return 0, invalidChar(s, ErrEmptyChar)
	}
	if !utf8.ValidString(s) {
		return 0, invalidChar(s, ErrInvalidUTF8)
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		return 0, invalidChar(s, fmt.Errorf("%w (got %d)", ErrTooManyChars, n))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Count validates the number of neighbours requested on each side.
func Count(n int) error {
	if n < 0 {
		verr := uerrors.NewValidation("count", fmt.Sprint(n), ErrNegativeCount.Error())
		verr.Err = ErrNegativeCount
		return verr
	}
	return nil
}

func invalidChar(s string, err error) *uerrors.ValidationError {
	verr := uerrors.NewValidation("char", s, err.Error())
	verr.Err = err
	return verr
}
