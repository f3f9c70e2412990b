package hexdump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedMode = errors.New("unsupported mode")
	ErrInvalidConfig   = errors.New("invalid config")
)

// BytesPerRow is the number of input bytes rendered on each data row.
const BytesPerRow = 16

// Mode selects how bytes are rendered. Exactly one mode is active per
// [Formatter]; the zero value means [TwoByteHex].
type Mode string

const (
	OneByteOctal   Mode = "one-byte-octal"
	OneByteChar    Mode = "one-byte-char"
	Canonical      Mode = "canonical"
	TwoByteHex     Mode = "two-bytes-hex"
	TwoByteDecimal Mode = "two-bytes-decimal"
	TwoByteOctal   Mode = "two-bytes-octal"
)

var modes = []Mode{OneByteOctal, OneByteChar, Canonical, TwoByteHex, TwoByteDecimal, TwoByteOctal}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Modes returns all supported mode names.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode parses a mode name. The empty string yields [TwoByteHex].
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return TwoByteHex, nil
	}
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// style is the byte rendering rule derived from a Mode.
type style int

const (
	styleHex style = iota
	styleOctal
	styleDecimal
	styleChar
	styleCanonical
)

// resolve maps a mode onto its style and byte width. Each mode maps to
// exactly one style.
func (m Mode) resolve() (s style, oneByte bool, err error) {
	switch m {
	case OneByteOctal:
		return styleOctal, true, nil
	case OneByteChar:
		return styleChar, true, nil
	case Canonical:
		return styleCanonical, false, nil
	case TwoByteHex, "":
		return styleHex, false, nil
	case TwoByteDecimal:
		return styleDecimal, false, nil
	case TwoByteOctal:
		return styleOctal, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnsupportedMode, string(m))
	}
}

// Write formats buf according to cfg and writes one row per line to w.
func Write(w io.Writer, buf []byte, cfg Config) error {
	f, err := New(buf, cfg)
	if err != nil {
		return err
	}
	return WriteRows(w, f.Rows())
}

// Marshal formats buf and returns the bytes.
func Marshal(buf []byte, cfg Config) ([]byte, error) {
	var out bytes.Buffer
	if err := Write(&out, buf, cfg); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
