// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import (
	"bytes"
	"fmt"
	"io"
)

// Compress encodes src as a complete LZ4 frame and returns the result.
// A nil opts is equivalent to DefaultCompressOptions().
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	var out bytes.Buffer
	if err := CompressStream(bytes.NewReader(src), &out, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// CompressStream reads all of r, splits it into LZ4 blocks of at most
// maxBlockSize bytes, and writes a complete LZ4 frame to w: header,
// blocks, terminator. It is the Driver of the design, wiring the Match
// Chain Store, Match Finder, Cost Optimizer, and Token Writer together
// one block at a time, mirroring smallz4's compress() loop.
func CompressStream(r io.Reader, w io.Writer, opts *CompressOptions) error {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	maxChainLength := opts.maxChainLength()

	header := frameHeader
	if opts.BlockChecksums {
		flags := byte(0x40 | 0x10)
		checksum := headerChecksumByte([]byte{flags, 0x70})
		header = [7]byte{0x04, 0x22, 0x4D, 0x18, flags, 0x70, checksum}
	}
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	cs := acquireChainStore()
	defer releaseChainStore(cs)

	// data holds the live window: up to maxDistance bytes carried over
	// from the previous block (or the seeded dictionary), followed by
	// the current block. dataZero is the absolute position data[0]
	// represents, so match distances translate directly to slice math.
	var data []byte
	var dataZero int64

	if len(opts.Dictionary) > 0 {
		seed := opts.Dictionary
		if len(seed) > maxDistance {
			seed = seed[len(seed)-maxDistance:]
		}
		// The seed occupies absolute positions [0, len(seed)); the input
		// follows it, since chain positions must stay non-negative.
		data = append(data, seed...)
		primeChain(cs, data, dataZero, dataZero, dataZero+int64(len(data)))
	}

	blockIndex := 0
	readBuf := make([]byte, readBufferSize)

	for {
		blockBegin := dataZero + int64(len(data))
		block, read, err := fillBlock(r, data, readBuf)
		if err != nil {
			return err
		}
		data = block
		blockEnd := dataZero + int64(len(data))
		if blockEnd == blockBegin {
			break // no more input
		}

		matches := buildMatches(data, dataZero, blockBegin, blockEnd, cs, maxChainLength)
		if len(matches) > blockEndNoMatch && maxChainLength > shortChainsGreedy {
			optimizeMatches(matches)
		}

		var tokens []byte
		if maxChainLength > 0 {
			tokens = writeTokens(matches, data[blockBegin-dataZero:blockEnd-dataZero])
		}
		raw := data[blockBegin-dataZero : blockEnd-dataZero]

		usedCompression, err := emitBlock(w, tokens, raw, maxChainLength, opts.BlockChecksums)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		if opts.Logger != nil {
			compressedSize := len(raw)
			if usedCompression {
				compressedSize = len(tokens)
			}
			opts.Logger.LogBlock(blockIndex, len(raw), compressedSize, !usedCompression)
		}
		blockIndex++

		// Trim the window to the trailing maxDistance bytes so future
		// matches can still reach across the block boundary, without
		// letting the buffer grow forever.
		if int64(len(data)) > maxDistance {
			trim := int64(len(data)) - maxDistance
			data = data[trim:]
			dataZero += trim
		}

		if read < maxBlockSize {
			// short read: fillBlock hit EOF while filling this block
			break
		}
	}

	if _, err := w.Write(frameTerminator[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// fillBlock grows carry (the retained window from the previous block, or
// nil) by reading up to maxBlockSize fresh bytes from r using scratch as
// a scratch read buffer, returning the combined slice. Reading fewer
// than maxBlockSize bytes signals end of input to the caller.
func fillBlock(r io.Reader, carry []byte, scratch []byte) (block []byte, totalRead int, err error) {
	block = append([]byte(nil), carry...)
	remaining := maxBlockSize
	for remaining > 0 {
		n := len(scratch)
		if n > remaining {
			n = remaining
		}
		read, rerr := r.Read(scratch[:n])
		if read > 0 {
			block = append(block, scratch[:read]...)
			remaining -= read
			totalRead += read
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrReadFailed, rerr)
		}
		if read == 0 {
			break
		}
	}
	return block, totalRead, nil
}

// primeChain feeds every hashable position in [from, to) through the
// chain store without producing matches, so a seeded dictionary's tail
// is reachable by the first real block.
func primeChain(cs *chainStore, data []byte, dataZero, from, to int64) {
	for pos := from; pos+minMatch <= to; pos++ {
		cs.update(data, dataZero, pos)
	}
}

// buildMatches produces one match candidate per block position, mirroring
// smallz4's single match-finder loop: the hash chain is extended at every
// position, but findLongestMatch itself only runs where the mode's skip
// counter allows it. Optimal mode (maxChainLength > shortChainsLazy) never
// skips, since optimizeMatches reads every index. Greedy (levels 1-3) and
// lazy (levels 4-6) modes both skip match finding for the rest of a chosen
// match's length; lazy mode additionally retries the position right after
// a match once before resuming the skip (smallz4's lazyEvaluation flag).
// Of the two, only lazy mode's candidates then go through optimizeMatches,
// per the caller's maxChainLength > shortChainsGreedy gate.
func buildMatches(data []byte, dataZero, blockBegin, blockEnd int64, cs *chainStore, maxChainLength int) []match {
	blockLen := int(blockEnd - blockBegin)
	matches := make([]match, blockLen)
	if maxChainLength == 0 {
		return matches
	}

	skipEligible := isGreedyLevel(maxChainLength) || isLazyLevel(maxChainLength)
	skipMatches := 0
	lazyEvaluation := false

	for pos := blockBegin; pos < blockEnd; pos++ {
		remaining := blockEnd - pos
		if remaining < minMatch {
			continue
		}

		// Chain-reacted self-match shortcut: once a position finds a very
		// long self-reference, every following position in that run
		// inherits it (minus one byte) in O(1) instead of repeating the
		// chain walk, avoiding a quadratic blowup on long repeated runs.
		if remaining > blockEndNoMatch && pos > blockBegin && data[pos-dataZero] == data[pos-1-dataZero] {
			prev := matches[pos-1-blockBegin]
			if prev.distance == 1 && prev.length > maxSameLetter {
				matches[pos-blockBegin] = match{length: prev.length - 1, distance: 1}
				cs.update(data, dataZero, pos)
				continue
			}
		}

		cs.update(data, dataZero, pos)
		if remaining <= blockEndNoMatch {
			continue
		}

		if skipMatches > 0 {
			skipMatches--
			if !lazyEvaluation {
				continue
			}
			lazyEvaluation = false
		}

		m := findLongestMatch(data, pos, dataZero, blockEnd-blockEndLiterals, cs, maxChainLength)
		matches[pos-blockBegin] = m

		if m.isMatch() && skipEligible {
			lazyEvaluation = isLazyLevel(maxChainLength) && skipMatches == 0
			skipMatches = int(m.length) - 1
		}
	}

	return matches
}
