// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package frame

import "github.com/cespare/xxhash/v2"

// blockChecksum32 must compute checksums identically to
// lz4opt.blockChecksum32 (truncated xxHash64) for BlockChecksums round
// trips to verify; see that function's doc comment for why it isn't a
// true xxHash32.
func blockChecksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}
