// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package mlz implements the MLZ codec: a Lempel–Ziv–Welch variant adapted for
masked symbol streams, used as the lossless entropy layer of an audio/image
subband codec.

The codec operates on octet sequences augmented with a per-position mask
width that tells the coder how many high-order bits of each symbol are
significant. This lets the dictionary match inputs that only share a prefix
under a given mask, rather than requiring an exact byte match.

# Encode

An Encoder owns its own dictionary and hash index and drives the greedy
longest-match search:

	enc := mlz.NewEncoder(&mlz.Options{Context: mlz.NewContext(logger)})
	sink := mlz.NewSliceBitSink(capBits)
	n, err := enc.Encode(input, mask, sink)

# Decode

A Decoder reconstructs the original bytes by reading codes from a
BitSource and walking parent chains through a mirrored dictionary:

	dec := mlz.NewDecoder(&mlz.Options{Context: mlz.NewContext(logger)})
	out := make([]byte, size)
	src := mlz.NewSliceBitSource(sink.Bits())
	n, err := dec.Decompress(src, size, out)

An Encoder's output bit stream, read back by a Decoder, reproduces the
original input whenever every mask width is zero (see the package's test
suite for the width-bump and flush reserved-code scenarios).
*/
package mlz
