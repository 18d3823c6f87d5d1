// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package main

import "errors"

// Sentinel errors returned by the CLI layer, as opposed to the lz4opt
// and frame packages' own sentinels.
var (
	// ErrOutputExists is returned when the requested output file already
	// exists and -f/--force was not given.
	ErrOutputExists = errors.New("smalz4go: output file already exists")

	// ErrUnknownFlag is returned when argument parsing rejects a flag
	// pflag itself doesn't already report a usage error for.
	ErrUnknownFlag = errors.New("smalz4go: unknown flag")
)
