package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// stdinPath names standard input as the input file.
const stdinPath = "-"

// validatePath reports ErrInvalidInputPath when path does not exist.
func validatePath(path string) error {
	if path == stdinPath {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newExitError(ErrInvalidInputPath, err)
		}
		return newExitError(ErrCannotOpenInput, err)
	}
	return nil
}

// readInput reads the whole of path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	var (
		buf []byte
		err error
	)
	if path == stdinPath {
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, newExitError(ErrCannotOpenInput, err)
	}
	return buf, nil
}
