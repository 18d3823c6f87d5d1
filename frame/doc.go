// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

/*
Package frame implements the reader half of the LZ4 frame format that
lz4opt writes: frame descriptor validation, block iteration, and token
inflation. It exists so a compressed stream can be checked for
round-trip correctness without any external tooling, and so the encoder
can be tested against a real independent LZ4 implementation
(github.com/pierrec/lz4/v4) in frame/compat_test.go.

	out, err := frame.Decompress(compressed, nil)

frame.NewReader wraps an io.Reader for callers that want to stream
decompressed bytes without materializing the whole output up front.
*/
package frame
