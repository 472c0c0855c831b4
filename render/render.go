// Package render draws fuzzy relations as bordered text tables, one row per
// domain symbol and one column per codomain symbol, in the relation's own key
// order.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rdeusser/fuzzy/fuzzyset"
	"github.com/rdeusser/fuzzy/relation"
	"github.com/rdeusser/fuzzy/safepool"
)

const cellWidth = 8

var bufPool = safepool.NewPool(
	func() *bytes.Buffer { return new(bytes.Buffer) },
	func(b *bytes.Buffer) { b.Reset() },
)

// Option configures rendering.
type Option func(*options)

type options struct {
	precision int
	color     *bool
}

// WithPrecision sets the number of decimal places printed for each degree.
func WithPrecision(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.precision = n
		}
	}
}

// WithColor forces colored labels on or off. Without it color follows
// color.NoColor.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = &enabled
	}
}

// Relation writes r to w as a table.
func Relation[K comparable](w io.Writer, r *relation.Relation[K], opts ...Option) error {
	o := &options{precision: 2}
	for _, opt := range opts {
		opt(o)
	}

	buf := bufPool.Get()
	defer bufPool.Put(buf)

	domain, codomain := r.DomainKeys(), r.CodomainKeys()
	border := strings.Repeat("-", (len(codomain)+1)*cellWidth+4)
	label := o.painter(color.FgCyan, color.Bold)

	buf.WriteString(border)
	buf.WriteByte('\n')

	buf.WriteString("| ")
	buf.WriteString(strings.Repeat(" ", cellWidth))
	for _, b := range codomain {
		buf.WriteString(label(fmt.Sprintf("%*s", cellWidth, fuzzyset.FormatSymbol(b))))
	}
	buf.WriteString(" |\n")

	for _, a := range domain {
		buf.WriteString("| ")
		buf.WriteString(label(fmt.Sprintf("%-*s", cellWidth, fuzzyset.FormatSymbol(a))))
		for _, b := range codomain {
			fmt.Fprintf(buf, "%*s", cellWidth, strconv.FormatFloat(r.Get(a, b), 'f', o.precision, 64))
		}
		buf.WriteString(" |\n")
	}

	buf.WriteString(border)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

// Sprint returns the table for r as a string.
func Sprint[K comparable](r *relation.Relation[K], opts ...Option) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = Relation(&sb, r, opts...)
	return sb.String()
}

func (o *options) painter(attrs ...color.Attribute) func(string) string {
	c := color.New(attrs...)

	if o.color != nil {
		if *o.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return func(s string) string {
		return c.Sprint(s)
	}
}
