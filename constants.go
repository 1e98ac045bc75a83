// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

// Wire-compatible constants (spec §3 DATA MODEL). These fix the code space,
// reserved codes, and table geometry; they must not change without breaking
// bitstream compatibility with any encoder/decoder pair.
const (
	// codeUnset is the sentinel for an empty dictionary slot or hash cell.
	codeUnset = -1

	// codeBitInit is the initial width, in bits, of emitted/consumed codes.
	codeBitInit = 9
	// codeBitMax is the maximum code width in bits.
	codeBitMax = 15

	// dicIndexInit is the initial code-space size, 2^codeBitInit.
	dicIndexInit = 512
	// dicIndexMax is the maximum code-space size, 2^codeBitMax.
	dicIndexMax = 32768

	// flushCode resets the dictionary to its initial state.
	flushCode = 256
	// freezeCode halts dictionary growth without resetting width.
	freezeCode = 257
	// firstCode is the first assignable non-reserved code.
	firstCode = 258
	// maxCode decodes identically to flushCode.
	maxCode = 32767

	// tableSize is the dictionary/hash capacity. Must stay prime: the hash
	// index's probe stride relies on tableSize having no small factors in
	// common with any key it derives.
	tableSize = 35023

	// wordSize is the number of distinct mask widths, 0..wordSize-1.
	wordSize = 8

	// maxSearch bounds the number of candidates a single hash lookup
	// returns to the encoder's search.
	maxSearch = 4
)
