// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

// LZ4 block/token format constants and match finder tuning knobs.

// Match length/window bounds (LZ4 block spec).
const (
	minMatch         = 4     // shortest match the token format can express
	maxDistance      = 65535 // matches must start within the most recent 64 KiB
	blockEndNoMatch  = 12    // last 12 bytes of a block never start a match
	blockEndLiterals = 5     // last 5 bytes of a block are always literals
)

// Hash table / chain parameters, ported from smallz4's match finder.
const (
	hashBits       = 20            // match finder hash table has 2^hashBits entries
	hashSize       = 1 << hashBits // number of hash table slots
	hashMultiplier = 22695477      // LCG constant, fixed for reproducibility (see DESIGN.md)
	hashShift      = 32 - hashBits
	previousSize   = 1 << 16      // ring size for the dual distance chains
	noPrevious     = 0            // sentinel: "no earlier position in this chain"
	noLastHash     = -1           // sentinel: "hash bucket never populated"
	maxSameLetter  = 19 + 255*256 // run length above which self-matches shortcut the search
)

// Compression-level thresholds, matching smallz4's public enum.
const (
	shortChainsGreedy = 3 // maxChainLength <= this: greedy mode
	shortChainsLazy   = 6 // maxChainLength <= this (and > greedy): lazy mode
)

// Block/frame sizing.
const (
	maxBlockSize   = 4 * 1024 * 1024 // LZ4 block-max-size id 7
	maxBlockSizeID = 7
	readBufferSize = 64 * 1024
)
