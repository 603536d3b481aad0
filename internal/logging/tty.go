package logging

import (
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/palmdev/palmdev-prep/internal/errors"
)

// ColorMode selects when colored output is used.
type ColorMode string

const (
	// ColorAuto colors terminals unless NO_COLOR or TERM=dumb say otherwise.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors every writer.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

var colorMode atomic.Value // ColorMode

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", errors.Newf("invalid color mode %q (valid: auto, always, never)", s)
	}
}

// SetColorMode changes the mode consulted by SupportsColor.
func SetColorMode(m ColorMode) {
	colorMode.Store(m)
}

// CurrentColorMode returns the mode set by SetColorMode, ColorAuto by default.
func CurrentColorMode() ColorMode {
	if m, ok := colorMode.Load().(ColorMode); ok {
		return m
	}
	return ColorAuto
}

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if output to w should be colored under the
// current color mode.
func SupportsColor(w io.Writer) bool {
	return supportsColor(CurrentColorMode(), IsTTY(w))
}

func supportsColor(mode ColorMode, isTTY bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}
