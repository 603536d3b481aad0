// Package specs renders the GCC specs text that maps -palmosN options to
// the header and library search paths of the discovered SDKs.
//
// For each SDK the output holds a "*cpp_sdk_<key>:" block of -isystem
// options and a "*link_sdk_<key>:" block of -L options. The "*cpp:" and
// "*link:" blocks then expand the generic roots unconditionally and refer
// to the per-SDK blocks behind %{palmos<key>:...} conditions, followed by a
// %{!palmos*:...} fallback to the default SDK:
//
//	*cpp:
//	+ %{!palmos-none: -isystem /opt/palmdev/include %{palmos5:%(cpp_sdk_5)} %{palmos5.0:%(cpp_sdk_5)} %{!palmos*: %(cpp_sdk_5)}}
package specs

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"github.com/palmdev/palmdev-prep/internal/dirtree"
	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/sdk"
)

// DefaultLibrarySubdir is the target-specific directory searched beneath
// each root's libraries subdirectory.
const DefaultLibrarySubdir = "m68k-palmos-coff"

type kind int

const (
	headers kind = iota
	libraries
)

var (
	directive = [...]string{headers: "cpp", libraries: "link"}
	option    = [...]string{headers: "-isystem ", libraries: "-L"}
)

// Options controls rendering.
type Options struct {
	// LibrarySubdir is appended to each libraries subdirectory before it is
	// enumerated. Empty means the libraries subdirectory itself.
	LibrarySubdir string

	// Dirs enumerates a directory tree. It defaults to dirtree.Dirs.
	Dirs func(root string) iter.Seq[string]
}

// Generate returns the specs text for inv. def is the SDK assumed when the
// compiler is given no -palmos option; nil means none.
func Generate(inv *sdk.Inventory, def *sdk.Root, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, inv, def, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the specs text for inv to w.
func Write(w io.Writer, inv *sdk.Inventory, def *sdk.Root, opts Options) error {
	if opts.Dirs == nil {
		opts.Dirs = dirtree.Dirs
	}
	g := &generator{w: bufio.NewWriter(w), opts: opts}

	sdks := inv.SDKs()
	for _, root := range sdks {
		g.sdkBlock(root, headers)
		g.sdkBlock(root, libraries)
	}
	g.mainBlock(inv.Generic(), sdks, def, headers)
	g.mainBlock(inv.Generic(), sdks, def, libraries)

	if g.err != nil {
		return errors.Wrap(g.err, "writing specs")
	}
	return errors.Wrap(g.w.Flush(), "flushing specs")
}

type generator struct {
	w    *bufio.Writer
	opts Options
	err  error
}

func (g *generator) str(s string) {
	if g.err != nil {
		return
	}
	_, g.err = g.w.WriteString(s)
}

func (g *generator) writeByte(c byte) {
	if g.err != nil {
		return
	}
	g.err = g.w.WriteByte(c)
}

// dirTree emits one option per directory of the root's headers or
// libraries tree. Whitespace in paths is backslash-escaped.
func (g *generator) dirTree(root *sdk.Root, k kind) {
	var top string
	switch k {
	case headers:
		top = root.HeadersDir()
	case libraries:
		top = root.LibrariesDir(g.opts.LibrarySubdir)
	}
	if top == "" {
		return
	}

	for dir := range g.opts.Dirs(top) {
		g.str(" ")
		g.str(option[k])
		for i := 0; i < len(dir); i++ {
			if isSpace(dir[i]) {
				g.writeByte('\\')
			}
			g.writeByte(dir[i])
		}
	}
}

func (g *generator) sdkBlock(root *sdk.Root, k kind) {
	g.str("*" + blockName(root.Key, k) + ":\n")
	g.dirTree(root, k)
	g.str("\n\n")
}

func (g *generator) mainBlock(generic, sdks []*sdk.Root, def *sdk.Root, k kind) {
	g.str("*" + directive[k] + ":\n+ %{!palmos-none:")

	for _, root := range generic {
		g.dirTree(root, k)
	}

	for _, root := range sdks {
		ref := "%(" + blockName(root.Key, k) + ")"
		g.str(" %{palmos" + root.Key + ":" + ref + "}")
		if sdk.IsNumeric(root.Key) {
			g.str(" %{palmos" + root.Key + ".0:" + ref + "}")
		}
	}

	if def != nil {
		g.str(" %{!palmos*: %(" + blockName(def.Key, k) + ")}")
	}

	g.str("}\n\n")
}

func blockName(key string, k kind) string {
	return directive[k] + "_sdk_" + key
}

// isSpace matches the C locale's isspace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
