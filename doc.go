// Package hexdump renders byte buffers as rows of text in the style of the
// BSD hexdump utility.
//
// The central type is [Formatter], an explicit iterator that slices a buffer
// into rows of [BytesPerRow] bytes and renders each row according to the
// active [Mode]. Rows are produced lazily, in order, and exactly once:
//
//	f, err := hexdump.New(data, hexdump.Config{Mode: hexdump.Canonical})
//	if err != nil { ... }
//	for row, ok := f.Next(); ok; row, ok = f.Next() {
//		fmt.Println(row)
//	}
//
// [Formatter.Rows] exposes the same sequence as an [iter.Seq], and [Write]
// and [Marshal] drive a formatter to completion in one call.
//
// # Modes
//
// Every row starts with a seven-digit hexadecimal offset label. The body
// depends on the mode:
//
//   - [OneByteOctal] — three-digit octal per byte
//   - [OneByteChar] — characters right-justified in four columns, control
//     bytes escaped
//   - [Canonical] — hex bytes in two groups of eight, padded to a fixed
//     column and followed by an |ASCII| panel
//   - [TwoByteHex] — two-digit hex per byte (the default)
//   - [TwoByteDecimal] — three-digit decimal per byte
//   - [TwoByteOctal] — three-digit octal per byte
//
// After the last data row the formatter yields one more row holding only
// the final offset, which is the number of bytes consumed.
//
// # Configuration
//
// [Config] carries the mode, a starting offset and an optional length
// limit. Negative offsets and lengths are taken as absolute values. Use
// [LoadConfig] to decode a Config from YAML:
//
//	mode: canonical
//	offset: 16
//	length: 64
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedMode] — unknown mode name
//   - [ErrInvalidConfig] — malformed config document
package hexdump
