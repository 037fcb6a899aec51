// Package markup writes HTML for the hand-written templ components.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer accumulates HTML into w and remembers the first write error so
// component bodies can stay linear.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (m *Writer) Raw(s string) *Writer {
	if m.err != nil {
		return m
	}
	_, m.err = io.WriteString(m.w, s)
	return m
}

// Text writes s HTML-escaped.
func (m *Writer) Text(s string) *Writer {
	return m.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (m *Writer) Attr(name, value string) *Writer {
	return m.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes the attribute only when value is not empty.
func (m *Writer) AttrIf(name, value string) *Writer {
	if value == "" {
		return m
	}
	return m.Attr(name, value)
}

// Flag writes a boolean attribute when on is true.
func (m *Writer) Flag(name string, on bool) *Writer {
	if !on {
		return m
	}
	return m.Raw(" " + name)
}

// URL writes an href/action style attribute through templ's URL sanitizer.
func (m *Writer) URL(name, value string) *Writer {
	return m.Attr(name, string(templ.URL(value)))
}

// Open writes `<tag class="...">`; the class attribute is omitted when empty.
func (m *Writer) Open(tag, class string) *Writer {
	m.Raw("<" + tag)
	m.AttrIf("class", class)
	return m.Raw(">")
}

// Close writes `</tag>`.
func (m *Writer) Close(tag string) *Writer {
	return m.Raw("</" + tag + ">")
}

// Component renders c in place. A nil component writes nothing.
func (m *Writer) Component(ctx context.Context, c templ.Component) *Writer {
	if m.err != nil || c == nil {
		return m
	}
	m.err = c.Render(ctx, m.w)
	return m
}

// Err returns the first error encountered.
func (m *Writer) Err() error {
	return m.err
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// When returns class when cond holds.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
