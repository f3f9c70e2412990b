package hexdump

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// canonicalWidth is the column at which the canonical ASCII panel starts.
	canonicalWidth = 57
	// charCellWidth is the right-justified cell width of OneByteChar output.
	charCellWidth = 4
	// canonicalGap is the intra-row index preceded by an extra space in
	// canonical output.
	canonicalGap = 8
)

// Formatter turns a byte buffer into a finite sequence of display rows.
//
// Each call to [Formatter.Next] yields one data row of up to [BytesPerRow]
// bytes. Once the buffer is consumed, one terminal row holding only the
// final offset label is yielded, after which the formatter is exhausted
// for good. A Formatter is not safe for concurrent use.
type Formatter struct {
	buf       []byte
	cursor    int
	end       int
	style     style
	canonical bool
	done      bool
}

// New returns a Formatter over buf. The formatter takes ownership of buf;
// callers must not modify it afterwards.
func New(buf []byte, cfg Config) (*Formatter, error) {
	cfg = cfg.Normalize()
	s, _, err := cfg.Mode.resolve()
	if err != nil {
		return nil, err
	}
	cursor := min(cfg.Offset, len(buf))
	end := len(buf)
	// Length is compared with the remaining span, never added to Offset.
	if cfg.Length > 0 && cfg.Length < end-cursor {
		end = cursor + cfg.Length
	}
	return &Formatter{
		buf:       buf,
		cursor:    cursor,
		end:       end,
		style:     s,
		canonical: s == styleCanonical,
	}, nil
}

// Offset returns the index of the next byte to be rendered.
func (f *Formatter) Offset() int { return f.cursor }

// Done reports whether the formatter has yielded its terminal row.
func (f *Formatter) Done() bool { return f.done }

// Next returns the next row. The second result is false once the
// formatter is exhausted.
func (f *Formatter) Next() (string, bool) {
	if f.done {
		return "", false
	}
	if f.cursor >= f.end {
		f.done = true
		return offsetLabel(f.cursor), true
	}
	end := min(f.end, f.cursor+BytesPerRow)
	row := f.render(f.buf[f.cursor:end])
	f.cursor = end
	return row, true
}

// Rows returns an iterator over the remaining rows. It shares the
// formatter's cursor, so ranging over it twice yields nothing the
// second time.
func (f *Formatter) Rows() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			row, ok := f.Next()
			if !ok || !yield(row) {
				return
			}
		}
	}
}

func (f *Formatter) render(chunk []byte) string {
	var b strings.Builder
	b.WriteString(offsetLabel(f.cursor))
	b.WriteByte(' ')

	var panel strings.Builder
	for i, c := range chunk {
		switch f.style {
		case styleOctal:
			fmt.Fprintf(&b, " %03o", c)
		case styleDecimal:
			fmt.Fprintf(&b, " %03d", c)
		case styleChar:
			b.WriteString(runewidth.FillLeft(escapeByte(c), charCellWidth))
		case styleCanonical:
			if i == canonicalGap {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, " %02x", c)
			panel.WriteByte(panelByte(c))
		default:
			fmt.Fprintf(&b, " %02x", c)
		}
	}

	if !f.canonical {
		return b.String()
	}
	return runewidth.FillRight(b.String(), canonicalWidth) + "   |" + panel.String() + "|"
}

func offsetLabel(n int) string {
	return fmt.Sprintf("%07x", n)
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// escapeByte returns the OneByteChar form of c: the character itself when
// printable, a C escape for the common control characters, three-digit
// octal otherwise.
func escapeByte(c byte) string {
	switch c {
	case 0:
		return `\0`
	case '\a':
		return `\a`
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	}
	if isPrintable(c) {
		return string(rune(c))
	}
	return fmt.Sprintf("%03o", c)
}

func panelByte(c byte) byte {
	if isPrintable(c) {
		return c
	}
	return '.'
}
