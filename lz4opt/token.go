// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

// writeTokens serializes a block's optimized candidate vector into LZ4
// block bytes: one token (literal-run length in the high nibble,
// match length in the low nibble) per (literal run, match) pair, with
// 0xFF-escaped extension bytes for runs/lengths that don't fit in a
// nibble, little-endian distances, and literal payload copied verbatim
// from blockData. The final token of a block carries no match (its low
// nibble is 0 and no distance follows), per invariant 4.
func writeTokens(matches []match, blockData []byte) []byte {
	result := make([]byte, 0, len(blockData))
	literalsFrom, literalsTo := 0, 0

	for offset := 0; offset < len(matches); {
		m := matches[offset]
		if !m.isMatch() {
			if literalsFrom == literalsTo {
				literalsFrom, literalsTo = offset, offset
			}
			literalsTo++
			m.length = 1
		}

		offset += int(m.length)
		lastToken := offset == len(matches)
		if !m.isMatch() && !lastToken {
			continue
		}

		numLiterals := literalsTo - literalsFrom

		token := byte(numLiterals)
		if numLiterals >= 15 {
			token = 15
		}
		token <<= 4

		matchLength := 0
		if m.isMatch() {
			matchLength = int(m.length) - minMatch
		}
		if !lastToken {
			ml := matchLength
			if ml >= 15 {
				ml = 15
			}
			token |= byte(ml)
		}

		result = append(result, token)

		if numLiterals >= 15 {
			result = appendVarLength(result, numLiterals-15)
		}

		if literalsFrom != literalsTo {
			result = append(result, blockData[literalsFrom:literalsTo]...)
			literalsFrom, literalsTo = 0, 0
		}

		if lastToken {
			break
		}

		result = append(result, byte(m.distance), byte(m.distance>>8))

		if matchLength >= 15 {
			result = appendVarLength(result, matchLength-15)
		}
	}

	return result
}

// appendVarLength appends n using LZ4's 0xFF-escaped variable-length
// encoding: full 0xFF bytes while the remainder is >= 255, then one
// final byte with whatever remains (which may be zero).
func appendVarLength(dst []byte, n int) []byte {
	for n >= 255 {
		dst = append(dst, 0xFF)
		n -= 255
	}
	return append(dst, byte(n))
}
