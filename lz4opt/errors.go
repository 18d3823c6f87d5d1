// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import "errors"

// Sentinel errors returned by the compressor core.
var (
	// ErrCompressInternal names an internal invariant violation (bad
	// distance, bad length, bad block bound), which would indicate a bug
	// in the encoder, not a property of the input data. No function in
	// this package returns it: the encoder does not check these
	// invariants at run time.
	ErrCompressInternal = errors.New("lz4opt: internal encoder invariant violated")

	// ErrReadFailed wraps a failure from the caller-supplied byte source.
	ErrReadFailed = errors.New("lz4opt: input read failed")

	// ErrWriteFailed wraps a failure from the caller-supplied byte sink.
	ErrWriteFailed = errors.New("lz4opt: output write failed")
)
