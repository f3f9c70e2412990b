package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/hexdump"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// modeFlag binds a command-line flag to a display mode.
type modeFlag struct {
	name  string
	short string
	mode  hexdump.Mode
	usage string
}

var modeFlags = []modeFlag{
	{"one-byte-octal", "b", hexdump.OneByteOctal, "one-byte octal display"},
	{"one-byte-char", "c", hexdump.OneByteChar, "one-byte character display"},
	{"canonical", "C", hexdump.Canonical, "canonical hex+ASCII display"},
	{"two-bytes-hex", "x", hexdump.TwoByteHex, "two-byte hexadecimal display"},
	{"two-bytes-decimal", "d", hexdump.TwoByteDecimal, "two-byte decimal display"},
	{"two-bytes-octal", "o", hexdump.TwoByteOctal, "two-byte octal display"},
}

type options struct {
	modes      map[hexdump.Mode]*bool
	length     int
	skip       int
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{modes: make(map[hexdump.Mode]*bool, len(modeFlags))}

	cmd := &cobra.Command{
		Use:   "hexdump [flags] file",
		Short: "Display file contents in hexadecimal, decimal, octal or ASCII",
		Long: `hexdump writes the contents of a file, or standard input when the file
is "-", as rows of sixteen bytes prefixed by their offset.

Exactly one display mode may be selected; two-byte hexadecimal is the
default. Settings may also be read from a YAML file given with --config;
flags set on the command line take precedence.`,
		Example: `  hexdump -C image.bin
  hexdump -b -s 32 -n 64 image.bin
  cat image.bin | hexdump -c -`,
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return newExitError(ErrArgumentParsing, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newExitError(ErrArgumentParsing, err)
	})

	f := cmd.Flags()
	names := make([]string, 0, len(modeFlags))
	for _, mf := range modeFlags {
		opts.modes[mf.mode] = f.BoolP(mf.name, mf.short, false, mf.usage)
		names = append(names, mf.name)
	}
	cmd.MarkFlagsMutuallyExclusive(names...)

	f.IntVarP(&opts.length, "length", "n", 0, "number of input bytes to interpret")
	f.IntVarP(&opts.skip, "skip", "s", 0, "number of input bytes to skip")
	f.StringVar(&opts.configFile, "config", "", "YAML config file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging on stderr")

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		logger.Debug("resolving config failed", "err", err)
		return err
	}
	logger.Debug("resolved config", "mode", cfg.Mode, "offset", cfg.Offset, "length", cfg.Length)

	buf, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		logger.Debug("reading input failed", "path", path, "err", err)
		return err
	}
	logger.Debug("read input", "path", path, "bytes", len(buf))

	if err := hexdump.Write(cmd.OutOrStdout(), buf, cfg); err != nil {
		logger.Debug("writing rows failed", "err", err)
		return newExitError(ErrWriteOutput, err)
	}
	return nil
}

// resolveConfig layers the config file, if any, under the flags that were
// set explicitly.
func resolveConfig(cmd *cobra.Command, opts *options) (hexdump.Config, error) {
	var cfg hexdump.Config
	if opts.configFile != "" {
		loaded, err := loadConfigFile(opts.configFile)
		if err != nil {
			return hexdump.Config{}, newExitError(ErrArgumentParsing, err)
		}
		cfg = loaded
	}

	for _, mf := range modeFlags {
		if *opts.modes[mf.mode] {
			cfg.Mode = mf.mode
		}
	}
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length = opts.length
	}
	if flags.Changed("skip") {
		cfg.Offset = opts.skip
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return hexdump.Config{}, newExitError(ErrArgumentParsing, err)
	}
	return cfg, nil
}

func loadConfigFile(path string) (hexdump.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return hexdump.Config{}, err
	}
	defer f.Close()
	cfg, err := hexdump.LoadConfig(f)
	if err != nil {
		return hexdump.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "hexdump",
		Level:  level,
	})
}
