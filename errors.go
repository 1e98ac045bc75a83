// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

import "errors"

// Sentinel errors for the decoder and encoder. All are stream-local: the
// operation that returns one has already produced a well-defined partial
// result (bytes/bits written so far) and the caller must Flush before reuse.
var (
	// ErrCodeOutOfRange is returned when the decoder reads a code greater
	// than currentDicIndexMax: the stream is corrupt.
	ErrCodeOutOfRange = errors.New("mlz: code exceeds current dictionary index maximum")
	// ErrChainIndexOutOfRange is returned when a parent-chain walk in
	// decodeString visits an index outside [0, dicIndexMax-1].
	ErrChainIndexOutOfRange = errors.New("mlz: dictionary chain index out of range")
	// ErrChainOffsetOverflow is returned when decodeString would write past
	// the remaining output buffer for the string being reconstructed.
	ErrChainOffsetOverflow = errors.New("mlz: dictionary chain offset exceeds remaining buffer")
	// ErrTableOverflow is returned when nextCode would reach tableSize-1:
	// the dictionary has no room left for a new entry before the next flush.
	ErrTableOverflow = errors.New("mlz: too many dictionary codes")
	// ErrBitStreamExhausted is returned by a BitSource when no further bits
	// remain, and by Decompress when fewer bits than one code field were
	// available.
	ErrBitStreamExhausted = errors.New("mlz: bit stream exhausted")
	// ErrBitSinkFull is returned by a BitSink, and by Encode, when the
	// caller-supplied output capacity (out_cap_bits) is exceeded.
	ErrBitSinkFull = errors.New("mlz: bit sink capacity exceeded")
)
