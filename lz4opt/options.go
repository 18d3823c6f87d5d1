// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

// CompressOptions configures the compressor. A nil *CompressOptions is
// equivalent to DefaultCompressOptions() (level 9, optimal parsing).
type CompressOptions struct {
	// Level selects the match-finder's chain-walking behavior:
	//   0      compression disabled, every block is stored raw
	//   1-3    greedy: skip match finding for the rest of a chosen match
	//   4-6    lazy: try one position ahead before committing to a match
	//   7-9    optimal: full backward cost-minimizing parse
	// Values above 9 behave as 9 (unlimited chain length).
	Level int

	// BlockChecksums, when true, appends a 32-bit checksum (the low 32
	// bits of xxHash64, see blockChecksum32) to every emitted block and
	// sets the corresponding frame descriptor flag. Off by default: it is
	// not the xxHash32 canonical LZ4 decoders expect, so only frame.Reader
	// verifies it, and the core does not need it for correctness.
	BlockChecksums bool

	// Dictionary, if non-empty, seeds the match finder's window with up
	// to the last 64 KiB of this buffer before compression starts, so
	// the first block can reference it. It is never re-applied to later
	// blocks.
	Dictionary []byte

	// Logger receives per-block diagnostics (raw size, compressed size,
	// whether the block fell back to raw storage). A nil Logger disables
	// diagnostics; the core never requires one.
	Logger BlockLogger
}

// DefaultCompressOptions returns options for level-9 optimal parsing
// with no checksums, no dictionary, and no logging.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 9}
}

// maxChainLength maps a CompressOptions.Level to the match finder's
// internal step budget, mirroring smallz4's -0..-9 CLI levels.
func (o *CompressOptions) maxChainLength() int {
	level := o.Level
	if level < 0 {
		level = 0
	}
	if level == 0 {
		return 0
	}
	if level >= 9 {
		return maxDistance // unlimited: walk the whole window
	}
	return level
}

// BlockLogger receives block-level diagnostics from the Driver. It is
// satisfied by a thin adapter over zerolog in cmd/smalz4go; the core
// package depends on no logging library directly.
type BlockLogger interface {
	LogBlock(index int, rawSize, compressedSize int, storedRaw bool)
}
