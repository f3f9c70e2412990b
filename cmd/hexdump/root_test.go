package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/hexdump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunDefaultMode(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte{0xca, 0xfe})
	out, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "0000000  ca fe\n0000002\n", out)
}

func TestRunModesMatchLibrary(t *testing.T) {
	t.Parallel()
	data := []byte("hello, hexdump!\n\x00\x01\x02")
	path := writeFile(t, "in.bin", data)
	for _, mf := range modeFlags {
		t.Run(mf.name, func(t *testing.T) {
			t.Parallel()
			want, err := hexdump.Marshal(data, hexdump.Config{Mode: mf.mode})
			require.NoError(t, err)

			out, _, err := execute(t, "", "-"+mf.short, path)
			require.NoError(t, err)
			assert.Equal(t, string(want), out)

			out, _, err = execute(t, "", "--"+mf.name, path)
			require.NoError(t, err)
			assert.Equal(t, string(want), out)
		})
	}
}

func TestRunSkipAndLength(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("0123456789abcdef"))
	out, _, err := execute(t, "", "-b", "-s", "-4", "-n", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "0000004  064 065 066\n0000007\n", out)
}

func TestRunExtremeSkipAndLength(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("0123"))

	out, _, err := execute(t, "", "-s", "1", "-n", "9223372036854775807", path)
	require.NoError(t, err)
	assert.Equal(t, "0000001  31 32 33\n0000004\n", out)

	out, _, err = execute(t, "", "-s", "-9223372036854775808", path)
	require.NoError(t, err)
	assert.Equal(t, "0000004\n", out)
}

func TestRunStdin(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "AB", "-c", "-")
	require.NoError(t, err)
	assert.Equal(t, "0000000    A   B\n0000002\n", out)
}

func TestRunMutuallyExclusiveModes(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("x"))
	out, _, err := execute(t, "", "-b", "-C", path)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, ExitArgumentParsing, exitCode(err))
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "missing.bin")
	_, _, err := execute(t, "", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInputPath)
	assert.Equal(t, ExitInvalidInput, exitCode(err))
}

func TestRunUnreadableInput(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCannotOpenInput)
	assert.Equal(t, ExitCannotOpenInput, exitCode(err))
}

func TestRunBadNumber(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("x"))
	_, _, err := execute(t, "", "-n", "ten", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArgumentParsing)
	assert.Equal(t, ExitArgumentParsing, exitCode(err))
}

func TestRunArgCount(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "")
	assert.ErrorIs(t, err, ErrArgumentParsing)

	_, _, err = execute(t, "", "a", "b")
	assert.ErrorIs(t, err, ErrArgumentParsing)
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("0123456789abcdef"))
	cfgPath := writeFile(t, "hexdump.yaml", []byte("mode: one-byte-octal\noffset: 2\nlength: 2\n"))

	out, _, err := execute(t, "", "--config", cfgPath, path)
	require.NoError(t, err)
	assert.Equal(t, "0000002  062 063\n0000004\n", out)

	// Flags set explicitly override the file.
	out, _, err = execute(t, "", "--config", cfgPath, "-x", "-s", "0", path)
	require.NoError(t, err)
	assert.Equal(t, "0000000  30 31\n0000002\n", out)
}

func TestRunBadConfigFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("x"))
	cfgPath := writeFile(t, "hexdump.yaml", []byte("mode: sideways\n"))

	_, _, err := execute(t, "", "--config", cfgPath, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, hexdump.ErrInvalidConfig)
	assert.Equal(t, ExitArgumentParsing, exitCode(err))

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), path)
	assert.Equal(t, ExitArgumentParsing, exitCode(err))
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("abc"))
	out, errOut, err := execute(t, "", "-v", "-C", path)
	require.NoError(t, err)
	assert.Contains(t, out, "|abc|")
	assert.Contains(t, errOut, "resolved config")
	assert.Contains(t, errOut, "read input")
}

func TestRunQuietByDefault(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("abc"))
	_, errOut, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRunWriteFailure(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "in.bin", []byte("abc"))
	cmd := newRootCmd()
	cmd.SetArgs([]string{path})
	cmd.SetOut(failingWriter{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	assert.ErrorIs(t, err, ErrWriteOutput)
	assert.Equal(t, ExitWriteOutput, exitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitOK, exitCode(nil))
	assert.Equal(t, ExitArgumentParsing, exitCode(errors.New("unknown flag")))
	assert.Equal(t, 7, exitCode(&ExitError{Code: 7}))
	assert.Equal(t, "exit status 7", (&ExitError{Code: 7}).Error())
}
