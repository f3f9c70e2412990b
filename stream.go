package hexdump

import (
	"fmt"
	"io"
	"iter"
)

// WriteRows writes each row from seq to w as it arrives, one per line.
// It stops at the first write error.
func WriteRows(w io.Writer, seq iter.Seq[string]) error {
	var streamErr error
	seq(func(row string) bool {
		if _, err := fmt.Fprintln(w, row); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}
