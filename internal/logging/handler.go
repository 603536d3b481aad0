package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler is a slog.Handler for terminals. A record renders as one line:
//
//	3:04PM INFO  wrote specs target=m68k-palmos path="/opt/x/GCC Libraries"
//
// Levels and keys are colored when SupportsColor(out) holds at creation.
type Handler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	prefix string // rendered WithAttrs attributes
	groups string // "a.b." for WithGroup("a").WithGroup("b")
	pal    *palette
}

type palette struct {
	time, trace, debug, info, warn, err, key *color.Color
}

func newPalette() *palette {
	return &palette{
		time:  forced(color.FgHiBlack),
		trace: forced(color.FgHiBlack),
		debug: forced(color.FgMagenta),
		info:  forced(color.FgGreen),
		warn:  forced(color.FgYellow),
		err:   forced(color.FgRed, color.Bold),
		key:   forced(color.FgCyan),
	}
}

// forced ignores color.NoColor, which tracks stdout rather than the log
// writer.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func (p *palette) forLevel(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l > LevelTrace:
		return p.debug
	default:
		return p.trace
	}
}

// NewHandler returns a Handler writing to out. Only opts.Level is used; a
// nil opts means LevelInfo.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{level: slog.LevelInfo, out: out, mu: &sync.Mutex{}}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	if SupportsColor(out) {
		h.pal = newPalette()
	}
	return h
}

// LevelName renders level, naming LevelTrace.
func LevelName(level slog.Level) string {
	if level <= LevelTrace {
		return "TRACE"
	}
	return level.String()
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		buf.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		buf.WriteByte(' ')
	}

	// Pad before coloring so escape codes don't eat the width.
	name := fmt.Sprintf("%-5s", LevelName(r.Level))
	if h.pal != nil {
		name = h.pal.forLevel(r.Level).Sprint(name)
	}
	buf.WriteString(name)
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.WriteString(h.prefix)

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.groups, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) timeColor() *color.Color {
	if h.pal == nil {
		return nil
	}
	return h.pal.time
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) appendAttr(buf *bytes.Buffer, groups string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, sub, ga)
		}
		return
	}

	key := groups + a.Key
	if h.pal != nil {
		key = h.pal.key.Sprint(key)
	}
	fmt.Fprintf(buf, " %s=%s", key, formatValue(a.Value))
}

// formatValue quotes strings that would break key=value parsing. SDK paths
// such as "GCC Libraries" contain spaces.
func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return strconv.Quote(err.Error())
		}
	}
	return v.String()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	for _, a := range attrs {
		h.appendAttr(&buf, h.groups, a)
	}
	nh := *h
	nh.prefix = h.prefix + buf.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = h.groups + name + "."
	return &nh
}
