// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

/*
Package lz4opt implements the compression core of an LZ4-frame-compatible
encoder: a dual match-chain match finder over a 64 KiB sliding window, a
backwards dynamic-programming optimal parse, and a token emitter that
produces output byte-identical to the reference LZ4 encoder at every
chain-length setting.

	out, err := lz4opt.Compress(src, &lz4opt.CompressOptions{Level: 9})

Level 0 disables compression (blocks are stored raw but still framed).
Levels 1-3 select greedy and levels 4-6 lazy chain-limited search; levels
7 and 8 search every position with a chain of 7 or 8 steps for optimal
parsing, and level 9 (or any Level above 9) walks the whole window.

The core imports no logging library and touches no global state:
everything it needs is passed in through CompressOptions (including the
optional BlockLogger for per-block diagnostics) or the Driver's
byte-source and byte-sink interfaces.
*/
package lz4opt
