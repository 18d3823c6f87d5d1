// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import "io"

// frameHeader is the fixed 7-byte LZ4 frame header this encoder always
// emits: magic, flags (version 1, blocks not independent), block-max-size id
// 7 (4 MiB), and the precomputed header checksum for that combination.
var frameHeader = [7]byte{0x04, 0x22, 0x4D, 0x18, 0x40, 0x70, 0xDF}

// frameTerminator ends an LZ4 frame: a literal 4-byte zero word.
var frameTerminator = [4]byte{0, 0, 0, 0}

// emitBlock chooses between the compressed token stream and the raw
// block bytes (whichever is smaller — or always raw when compression is
// disabled), tags the 4-byte little-endian size word's high bit to mark
// raw storage, and writes size word + payload to w.
func emitBlock(w io.Writer, tokens, raw []byte, maxChainLength int, withChecksum bool) (usedCompression bool, err error) {
	usedCompression = maxChainLength > 0 && len(tokens) < len(raw)

	payload := raw
	if usedCompression {
		payload = tokens
	}

	tagged := uint32(len(payload))
	if !usedCompression {
		tagged |= 0x80000000
	}

	var sizeWord [4]byte
	sizeWord[0] = byte(tagged)
	sizeWord[1] = byte(tagged >> 8)
	sizeWord[2] = byte(tagged >> 16)
	sizeWord[3] = byte(tagged >> 24)

	if _, err := w.Write(sizeWord[:]); err != nil {
		return false, err
	}
	if _, err := w.Write(payload); err != nil {
		return false, err
	}

	if withChecksum {
		sum := blockChecksum32(payload)
		var sumWord [4]byte
		sumWord[0] = byte(sum)
		sumWord[1] = byte(sum >> 8)
		sumWord[2] = byte(sum >> 16)
		sumWord[3] = byte(sum >> 24)
		if _, err := w.Write(sumWord[:]); err != nil {
			return false, err
		}
	}

	return usedCompression, nil
}
