// Command uninear prints the Unicode codepoints surrounding a reference
// character, making every one of them visible.
//
// Usage:
//
//	uninear <char> <count> [--codepoint] [--encoding utf8|utf16|utf32]
//
// Control characters are shown as Control Pictures or <U+XXXX>, format
// characters as their bracketed Unicode name.
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/uninear/core/encoding"
	"github.com/FocuswithJustin/uninear/core/errors"
	"github.com/FocuswithJustin/uninear/internal/logging"
	"github.com/FocuswithJustin/uninear/internal/neighbors"
	"github.com/FocuswithJustin/uninear/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for uninear.
type CLI struct {
	Char  RawArg `arg:"" help:"Reference character (exactly one codepoint)"`
	Count uint   `arg:"" help:"Number of codepoints to show on each side"`

	Codepoint bool            `short:"c" help:"Show the U+XXXXXX codepoint column"`
	Encoding  encoding.Scheme `short:"e" placeholder:"utf8|utf16|utf32" help:"Show the encoded form in this scheme (utf8, utf16, utf32)"`

	LogLevel  string           `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Diagnostic log level (${enum})"`
	LogFormat string           `name:"log-format" enum:"text,json" default:"text" help:"Diagnostic log format (${enum})"`
	Version   kong.VersionFlag `help:"Print version information and quit"`
}

// RawArg is a positional argument kept byte-for-byte as given on the
// command line, so invalid UTF-8 reaches validation instead of being
// replaced with U+FFFD.
type RawArg string

// Decode implements kong.MapperValue.
func (a *RawArg) Decode(ctx *kong.DecodeContext) error {
	token, err := ctx.Scan.PopValue("char")
	if err != nil {
		return err
	}
	switch v := token.Value.(type) {
	case string:
		*a = RawArg(v)
	case []byte:
		*a = RawArg(v)
	default:
		return fmt.Errorf("expected a character but got %q (%T)", token, token.Value)
	}
	return nil
}

// Run renders the neighbourhood of c.Char to stdout. Diagnostics and the
// invalid-character message go to stderr.
func (c *CLI) Run(stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(stderr, level, format)

	base, err := validation.ReferenceChar(string(c.Char))
	if err != nil {
		var verr *errors.ValidationError
		if errors.As(err, &verr) {
			// A bad reference character is a user error, not a failure.
			fmt.Fprintf(stderr, "Error: %s\n", verr.Message)
			return nil
		}
		return err
	}

	// Counts past math.MaxInt clamp to the whole codespace anyway.
	count := math.MaxInt
	if c.Count < uint(math.MaxInt) {
		count = int(c.Count)
	}

	n, err := neighbors.Render(stdout, base, count, neighbors.Options{
		Codepoint: c.Codepoint,
		Scheme:    c.Encoding,
	})
	if err != nil {
		return errors.Wrap(err, "render neighbours")
	}
	logging.Info("render_complete", "lines", n)
	return nil
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("uninear"),
		kong.Description("Show the Unicode characters around a reference character, always visibly"),
		kong.Vars{"version": "uninear version " + version},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options()...)
	err := cli.Run(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
}
