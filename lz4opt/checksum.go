// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import "github.com/cespare/xxhash/v2"

// blockChecksum32 derives a 32-bit block checksum from data. The
// canonical LZ4 frame format uses xxHash32; the retrieved dependency
// set only offers github.com/cespare/xxhash/v2, an xxHash64
// implementation, so this truncates its 64-bit sum instead. frame.Reader
// verifies checksums the identical way, so round trips through this
// package stay internally consistent even though CompressOptions.BlockChecksums
// output will not match a canonical lz4 CLI's checksum bytes.
func blockChecksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

// headerChecksumByte mirrors the frame descriptor checksum LZ4 places
// after the flags and block-max-size bytes: (hash(descriptor) >> 8) & 0xFF.
func headerChecksumByte(descriptor []byte) byte {
	return byte((blockChecksum32(descriptor) >> 8) & 0xFF)
}
