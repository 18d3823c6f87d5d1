// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

// Command smalz4go compresses and decompresses files in the LZ4 frame
// format, matching the CLI surface of original_source/smallz4.cpp's
// main() (plus a -d/--decompress mode, folded into one binary).
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
