// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import "testing"

// buildCandidates runs the real match finder over data so optimizer
// tests exercise realistic candidate vectors instead of hand-built ones.
func buildCandidates(t *testing.T, data []byte) []match {
	t.Helper()
	cs := newChainStore()
	matches := make([]match, len(data))
	for pos := int64(0); pos < int64(len(data)); pos++ {
		if int64(len(data))-pos < minMatch {
			continue
		}
		cs.update(data, 0, pos)
		matches[pos] = findLongestMatch(data, pos, 0, int64(len(data)), cs, maxDistance)
	}
	return matches
}

func TestOptimizeMatches_NeverExtendsPastBlockEnd(t *testing.T) {
	data := []byte("abcabcabcabcabcabcabcabcabcabcabc")
	matches := buildCandidates(t, data)
	optimizeMatches(matches)

	for i, m := range matches {
		if i+int(m.length) > len(matches) {
			t.Fatalf("position %d: length %d crosses block end %d", i, m.length, len(matches))
		}
	}
}

func TestOptimizeMatches_NoMatchBelowMinMatch(t *testing.T) {
	data := []byte("abcabcabcabcabcabcabcabcabcabcabc")
	matches := buildCandidates(t, data)
	optimizeMatches(matches)

	for i, m := range matches {
		if m.length != 1 && m.length < minMatch {
			t.Fatalf("position %d: chosen length %d is neither literal (1) nor a valid match (>=%d)", i, m.length, minMatch)
		}
	}
}

func TestOptimizeMatches_LiteralChoiceClearsDistance(t *testing.T) {
	data := []byte("xyzxyzxyzxyzxyzxyzxyzxyzxyzxyzxyz")
	matches := buildCandidates(t, data)
	optimizeMatches(matches)

	for i, m := range matches {
		if m.length == 1 && m.distance != noPrevious {
			t.Fatalf("position %d: literal choice left a stale distance %d", i, m.distance)
		}
	}
}

func TestOptimizeMatches_SelfReferenceShortcut(t *testing.T) {
	// Synthesize candidates as if the match finder had already found a
	// maximal self-reference at every position, without paying the cost
	// of actually running it over a buffer that large.
	blockLen := maxSameLetter + 100
	matches := make([]match, blockLen)
	for i := range matches {
		length := blockLen - i
		if length > maxDistance {
			length = maxDistance
		}
		matches[i] = match{length: uint32(length), distance: 1}
	}

	optimizeMatches(matches)

	if !matches[0].isMatch() || matches[0].distance != 1 {
		t.Fatalf("expected a long self-reference at position 0, got length=%d distance=%d", matches[0].length, matches[0].distance)
	}
	if matches[0].length < maxSameLetter {
		t.Fatalf("shortcut should keep the long self-reference, got length=%d", matches[0].length)
	}
}

func TestOptimizeMatches_EmptyBlockIsNoop(t *testing.T) {
	matches := []match{}
	optimizeMatches(matches) // must not panic on an empty slice
}

// TestOptimizeMatches_Idempotent checks that feeding an already-optimized
// vector back in leaves it unchanged: the cost array is a pure function of
// the candidate lengths/distances, so a second pass over resolved choices
// (each already either a literal or a length that minimized the byte
// count) must re-derive the same choices.
func TestOptimizeMatches_Idempotent(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog the quick brown fox")
	matches := buildCandidates(t, data)
	optimizeMatches(matches)

	once := make([]match, len(matches))
	copy(once, matches)

	optimizeMatches(matches)

	for i := range matches {
		if matches[i] != once[i] {
			t.Fatalf("position %d: second pass changed %+v to %+v", i, once[i], matches[i])
		}
	}
}
