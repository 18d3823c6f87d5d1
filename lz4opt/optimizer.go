// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

// optimizeMatches runs the backward dynamic-programming cost minimizer
// over one block's candidate matches, in place. It is the Cost Optimizer
// of the design: for every position i (from the end of the block back to
// the start) it picks the match length — possibly 1, meaning literal —
// that minimizes the number of output bytes needed to encode [i, end).
//
// Callers decide whether to run this at all (spec: only when
// maxChainLength > shortChainsGreedy and the block is longer than 12
// bytes); on short or greedy-mode blocks the raw candidate vector from
// the match finder is used as-is.
func optimizeMatches(matches []match) {
	blockEnd := len(matches)
	cost := make([]uint32, blockEnd)
	posLastMatch := int64(blockEnd)

	for i := blockEnd - (1 + blockEndLiterals); i >= 0; i-- {
		numLiterals := uint32(posLastMatch - int64(i))

		// Baseline: treat position i as a literal.
		minCost := cost[i+1] + 1
		if numLiterals >= 15 && (numLiterals-15)%255 == 0 {
			minCost++ // a new 0xFF extension byte becomes necessary
		}
		bestLength := uint32(1)

		clamped := matches[i]
		if clamped.isMatch() && int64(i)+int64(clamped.length)+blockEndLiterals > int64(blockEnd) {
			// A match must not cross the block end (invariant 3).
			clamped.length = uint32(int64(blockEnd) - (int64(i) + blockEndLiterals))
		}

		for length := uint32(minMatch); length <= clamped.length; length++ {
			currentCost := cost[i+int(length)] + 1 + 2 // token byte + 2 distance bytes
			if length >= 19 {
				currentCost += 1 + (length-19)/255
			}

			// "<=" (not "<") prefers the longer match on ties: it breaks
			// long literal runs the cost array can't see coming from the
			// left, which would otherwise need an extra extension byte
			// that this pass never accounts for at positions before i.
			if currentCost <= minCost {
				minCost = currentCost
				bestLength = length
			}

			if clamped.distance == 1 && clamped.length >= maxSameLetter {
				// Bound the quadratic cost of a very long self-referencing
				// run: assume the longest match is the best one and stop.
				bestLength = clamped.length
				minCost = cost[i+int(clamped.length)] + 1 + 2 + 1 + (clamped.length-19)/255
				break
			}
		}

		if bestLength >= minMatch {
			posLastMatch = int64(i)
		}

		cost[i] = minCost
		matches[i].length = bestLength
		if bestLength == 1 {
			matches[i].distance = noPrevious
		}
	}
}
