// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smalz4/smalz4go/frame"
	"github.com/smalz4/smalz4go/lz4opt"
)

type rootFlags struct {
	level          int
	force          bool
	decompress     bool
	blockChecksums bool
	logLevel       string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{level: 9, logLevel: "info"}

	cmd := &cobra.Command{
		Use:   "smalz4go [flags] [input] [output]",
		Short: "Compress or decompress files in the LZ4 frame format",
		Long: "smalz4go implements smallz4's optimal-parsing LZ4 encoder, plus a\n" +
			"companion decompressor, as a single Go binary. input and output\n" +
			"default to stdin/stdout; \"-\" means the same explicitly.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveLevelShorthand(cmd, flags)
			return run(cmd, args, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&flags.level, "level", flags.level, "compression level 0-9 (0 disables compression, 9 is optimal parsing)")
	for lvl := 0; lvl <= 9; lvl++ {
		name := strconv.Itoa(lvl)
		cmd.Flags().BoolP(name, name, false, fmt.Sprintf("shorthand for --level=%d", lvl))
	}
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing output file")
	cmd.Flags().BoolVarP(&flags.decompress, "decompress", "d", false, "decompress instead of compress")
	cmd.Flags().BoolVar(&flags.blockChecksums, "block-checksums", false, "append a checksum to every compressed block")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", flags.logLevel, "trace, debug, info, warn, error, or disabled")

	return cmd
}

// resolveLevelShorthand lets a bundled -0..-9 flag override --level,
// mirroring smallz4.cpp's single-character level flags without hand
// -rolling argument scanning: pflag already parses "-3" as the boolean
// flag named "3", this just reads back whichever one fired.
func resolveLevelShorthand(cmd *cobra.Command, flags *rootFlags) {
	for lvl := 0; lvl <= 9; lvl++ {
		if cmd.Flags().Changed(strconv.Itoa(lvl)) {
			flags.level = lvl
		}
	}
}

func run(cmd *cobra.Command, args []string, flags *rootFlags) error {
	logger, err := newLogger(flags.logLevel)
	if err != nil {
		return err
	}

	in, inCloser, err := openInput(args)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open input")
		return err
	}
	defer inCloser()

	out, outCloser, err := openOutput(args, flags.force)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open output")
		return err
	}
	defer outCloser()

	if flags.decompress {
		if _, err := io.Copy(out, frame.NewReader(in)); err != nil {
			logger.Error().Err(err).Msg("decompression failed")
			return err
		}
		return nil
	}

	opts := &lz4opt.CompressOptions{
		Level:          flags.level,
		BlockChecksums: flags.blockChecksums,
		Logger:         &zerologBlockLogger{log: logger},
	}
	if err := lz4opt.CompressStream(in, out, opts); err != nil {
		logger.Error().Err(err).Msg("compression failed")
		return err
	}
	return nil
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(args []string, force bool) (io.Writer, func(), error) {
	if len(args) < 2 || args[1] == "-" {
		return os.Stdout, func() {}, nil
	}

	if !force {
		if _, err := os.Stat(args[1]); err == nil {
			return nil, nil, fmt.Errorf("%w: %q (use -f to overwrite)", ErrOutputExists, args[1])
		}
	}

	f, err := os.Create(args[1])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("%w: --log-level %q", ErrUnknownFlag, level)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// zerologBlockLogger adapts zerolog to lz4opt.BlockLogger so the core
// package never imports a logging library directly.
type zerologBlockLogger struct {
	log zerolog.Logger
}

func (z *zerologBlockLogger) LogBlock(index, rawSize, compressedSize int, storedRaw bool) {
	z.log.Debug().
		Int("block", index).
		Int("raw_bytes", rawSize).
		Int("stored_bytes", compressedSize).
		Bool("stored_raw", storedRaw).
		Msg("block encoded")
}
