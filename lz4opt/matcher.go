// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

// findLongestMatch walks the exact-match chain built by chainStore.update
// for position pos, for at most maxChainLength steps, and returns the
// longest match found. data holds bytes for the whole buffered window
// (data[0] corresponds to absolute position begin); end is one past the
// last position that may be used to extend a match forward (callers pass
// blockEnd-blockEndLiterals so the last 5 bytes of a block stay
// literal, per spec invariant 4).
//
// The comparison is split into a cheap backward phase (reject most
// candidates after a handful of 4-byte compares) and a forward phase
// that actually measures the new candidate's length, mirroring
// smallz4's findLongestMatch.
func findLongestMatch(data []byte, pos, begin, end int64, cs *chainStore, maxChainLength int) match {
	result := match{length: 1}

	stepsLeft := maxChainLength
	current := pos - begin
	stop := current + (end - pos)

	distance := int64(cs.previousExact[ringIndex(pos)])
	var totalDistance int64

	for distance != noPrevious {
		totalDistance += distance
		if totalDistance > maxDistance {
			break
		}

		// prepare next position in the chain before possibly stopping,
		// so callers that resume the walk elsewhere see consistent state.
		distance = int64(cs.previousExact[ringIndex(pos-totalDistance)])

		if stepsLeft <= 0 {
			break
		}
		stepsLeft--

		atLeast := current + int64(result.length) + 1
		if atLeast > stop {
			break
		}

		// Phase 1: scan backward from atLeast to current, 4 bytes at a
		// time. Most candidates fail here after one or two compares.
		compare := atLeast - 4
		ok := true
		for compare > current {
			if !bytesEqual4(data, compare, compare-totalDistance) {
				ok = false
				break
			}
			compare -= 4
		}
		if !ok {
			continue
		}

		// Phase 2: scan forward from atLeast to find the real length.
		compare = atLeast
		for compare+4 <= stop && bytesEqual4(data, compare, compare-totalDistance) {
			compare += 4
		}
		for compare < stop && data[compare] == data[compare-totalDistance] {
			compare++
		}

		result.distance = uint16(totalDistance)
		result.length = uint32(compare - current)
	}

	return result
}

// bytesEqual4 reports whether the four bytes at data[i:i+4] equal the
// four bytes at data[j:j+4].
func bytesEqual4(data []byte, i, j int64) bool {
	return data[i] == data[j] &&
		data[i+1] == data[j+1] &&
		data[i+2] == data[j+2] &&
		data[i+3] == data[j+3]
}

// isGreedyLevel reports whether maxChainLength selects greedy mode.
// buildMatches uses this to decide whether a chosen match's length should
// make it skip match finding for the following positions.
func isGreedyLevel(maxChainLength int) bool {
	return maxChainLength > 0 && maxChainLength <= shortChainsGreedy
}

// isLazyLevel reports whether maxChainLength selects lazy mode. Like
// greedy mode it skips match finding inside a chosen match in
// buildMatches, but it first retries the position right after the match
// once; unlike greedy mode, its candidates also go through
// optimizeMatches.
func isLazyLevel(maxChainLength int) bool {
	return maxChainLength > shortChainsGreedy && maxChainLength <= shortChainsLazy
}
