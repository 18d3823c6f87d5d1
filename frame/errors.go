// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package frame

import "errors"

// Sentinel errors returned by Reader and Decompress.
var (
	// ErrBadMagic is returned when the input doesn't start with a
	// recognized LZ4 frame signature at all.
	ErrBadMagic = errors.New("frame: not an LZ4 stream")

	// ErrLegacyFrame is returned for the legacy LZ4 magic number.
	// original_source/smallz4cat.c decodes legacy frames; this port
	// refuses them outright, since the encoder never produces one.
	ErrLegacyFrame = errors.New("frame: legacy LZ4 frames are not supported")

	// ErrUnsupportedFlags is returned when the frame descriptor sets a
	// flag this decoder doesn't implement (content size or dictionary
	// ID). The version bits are not checked; a content checksum is
	// accepted, and its trailer is read but not verified.
	ErrUnsupportedFlags = errors.New("frame: unsupported frame descriptor flags")

	// ErrTruncated is returned when the input ends in the middle of a
	// block, a token, or a length/distance field.
	ErrTruncated = errors.New("frame: truncated input")

	// ErrInvalidOffset is returned when a match's distance is 0 or
	// reaches before the start of the decoded stream.
	ErrInvalidOffset = errors.New("frame: invalid match offset")

	// ErrChecksumMismatch is returned when a block's checksum doesn't
	// match its payload.
	ErrChecksumMismatch = errors.New("frame: block checksum mismatch")

	// ErrBlockTooLarge is returned when a block's declared size exceeds
	// 4 MiB, the largest block-max-size LZ4 defines. The frame's own
	// block-max-size byte is not consulted.
	ErrBlockTooLarge = errors.New("frame: block exceeds block-max-size")
)
