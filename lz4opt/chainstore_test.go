// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import "testing"

func TestHash4_StaysWithinTable(t *testing.T) {
	for _, four := range []uint32{0, 1, 0xFFFFFFFF, 0x12345678, 0xDEADBEEF} {
		h := hash4(four)
		if h >= hashSize {
			t.Fatalf("hash4(%#x) = %d, out of range [0,%d)", four, h, hashSize)
		}
	}
}

func TestChainStore_ResetClearsAllSentinels(t *testing.T) {
	cs := newChainStore()
	data := []byte("abcdabcdabcdabcd")
	for pos := int64(0); pos+4 <= int64(len(data)); pos++ {
		cs.update(data, 0, pos)
	}

	cs.reset()

	for _, h := range cs.lastHash {
		if h != noLastHash {
			t.Fatal("reset left a populated lastHash entry")
		}
	}
	for _, d := range cs.previousHash {
		if d != noPrevious {
			t.Fatal("reset left a populated previousHash entry")
		}
	}
	for _, d := range cs.previousExact {
		if d != noPrevious {
			t.Fatal("reset left a populated previousExact entry")
		}
	}
}

func TestChainStore_FindsExactRepeat(t *testing.T) {
	cs := newChainStore()
	data := []byte("wxyzwxyz")
	for pos := int64(0); pos+4 <= int64(len(data)); pos++ {
		cs.update(data, 0, pos)
	}

	idx := ringIndex(4)
	if cs.previousExact[idx] != 4 {
		t.Fatalf("previousExact[4] = %d, want 4 (distance back to position 0)", cs.previousExact[idx])
	}
}

func TestChainStore_RejectsDistanceBeyondMaxDistance(t *testing.T) {
	cs := newChainStore()
	data := make([]byte, maxDistance+8)
	copy(data[0:4], []byte{1, 2, 3, 4})
	copy(data[len(data)-4:], []byte{1, 2, 3, 4})

	for pos := int64(0); pos+4 <= int64(len(data)); pos++ {
		cs.update(data, 0, pos)
	}

	last := int64(len(data)) - 4
	idx := ringIndex(last)
	if cs.previousExact[idx] != noPrevious {
		t.Fatalf("previousExact at distance > maxDistance should be noPrevious, got %d", cs.previousExact[idx])
	}
}
