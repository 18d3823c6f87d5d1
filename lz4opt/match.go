// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

// match is a candidate (or chosen) back-reference: copy length bytes
// from distance bytes before the current position. length == 1 is the
// literal sentinel (distance is meaningless in that case).
type match struct {
	length   uint32
	distance uint16
}

// isMatch reports whether m represents a real back-reference rather
// than a literal placeholder.
func (m match) isMatch() bool {
	return m.length >= minMatch
}
