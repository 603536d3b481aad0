package sdk

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/palmdev/palmdev-prep/internal/logging"
)

// Reporter writes the human-readable installation analysis. A nil
// *Reporter discards everything.
type Reporter struct {
	out     io.Writer
	warn    *color.Color
	invalid *color.Color
	ok      *color.Color
}

// NewReporter returns a Reporter writing to out, colorized when out is a
// color-capable terminal.
func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{
		out:     out,
		warn:    color.New(color.FgYellow),
		invalid: color.New(color.FgRed),
		ok:      color.New(color.FgGreen),
	}
	if logging.SupportsColor(out) {
		r.warn.EnableColor()
		r.invalid.EnableColor()
		r.ok.EnableColor()
	} else {
		r.warn.DisableColor()
		r.invalid.DisableColor()
		r.ok.DisableColor()
	}
	return r
}

func (r *Reporter) scanning(prefix string) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, "Checking SDKs in %s\n", prefix)
}

// entry describes one root. overriding is the stored SDK hiding this one.
func (r *Reporter) entry(name string, root, overriding *Root, headersRequired bool) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, "  %-13s\t", name)

	switch {
	case overriding != nil:
		r.warn.Fprintf(r.out, "UNUSED -- hidden by %s", overriding.Prefix)
	case headersRequired && !root.HasHeaders():
		r.invalid.Fprint(r.out, "INVALID -- no headers")
	default:
		if root.HasHeaders() {
			fmt.Fprintf(r.out, "headers in '%s', ", r.ok.Sprint(root.Headers))
		} else {
			fmt.Fprint(r.out, "no headers, ")
		}
		if root.HasLibraries() {
			fmt.Fprintf(r.out, "libraries in '%s'", r.ok.Sprint(root.Libraries))
		} else {
			fmt.Fprint(r.out, "no libraries")
		}
	}

	fmt.Fprintln(r.out)
}

func (r *Reporter) none() {
	if r == nil {
		return
	}
	fmt.Fprintln(r.out, "  (none)")
}

func (r *Reporter) common(prefix string, root *Root) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, "  and material in %s used regardless of SDK choice\n", prefix)
	r.entry("  (common)", root, nil, false)
}

func (r *Reporter) done() {
	if r == nil {
		return
	}
	fmt.Fprintln(r.out)
}

// DefaultChosen reports the SDK picked automatically for compilations that
// name no SDK.
func (r *Reporter) DefaultChosen(key string) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, "When GCC is given no -palmos options, SDK '%s' will be used by default\n\n", key)
}

// Printf writes a free-form status line.
func (r *Reporter) Printf(format string, args ...any) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, format, args...)
}
