// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

// hashIndex is an open-address probing table over the dictionary, one row
// per entry, keyed by (parent, char & mask, maskWidth) (spec §4.2,
// component B). It never resizes; capacity is fixed at tableSize rows by
// wordSize columns.
type hashIndex struct {
	table [tableSize][wordSize]int
}

// flush marks every cell unset.
func (h *hashIndex) flush() {
	for i := range h.table {
		for w := range h.table[i] {
			h.table[i][w] = codeUnset
		}
	}
}

// maskFor returns the mask that keeps the top w bits of an 8-bit char
// (w == 0 degenerates to "no bits masked", i.e. mask == 0x00, per spec §9
// Open Question (b): "all characters match at width 0").
func maskFor(w int) int {
	if w <= 0 {
		return 0x00
	}
	if w >= wordSize {
		return 0xff
	}
	return (0xff << (wordSize - w)) & 0xff
}

// probeStart returns the first probe index and stride for a key derived
// from (parent, maskedChar) per the h0/stride formula in spec §4.2.
func probeStart(parent, maskedChar int) (index, stride int) {
	h0 := (maskedChar << (codeBitMax - wordSize)) ^ parent
	h0 %= tableSize
	if h0 < 0 {
		h0 += tableSize
	}
	if h0 == 0 {
		return 0, 1
	}
	return h0, tableSize - h0
}

// probeNext advances a probe index by -stride mod tableSize.
func probeNext(index, stride int) int {
	index -= stride
	if index < 0 {
		index += tableSize
	}
	return index
}

// installHashed installs code into every one of the wordSize mask-width
// columns, each at the first vacant cell in that column's probe sequence
// for (parent, char & mask_w). Mirrors mlz_set_new_entry_to_dict_with_hash.
func (h *hashIndex) installHashed(parent, char int, code int) {
	for w := 0; w < wordSize; w++ {
		maskedChar := char & maskFor(w)
		index, stride := probeStart(parent, maskedChar)
		col := w % wordSize
		for h.table[index][col] != codeUnset {
			index = probeNext(index, stride)
		}
		h.table[index][col] = code
	}
}

// candidates walks the probe sequence for (parent, char, w) in column
// w % wordSize, collecting up to maxSearch dictionary codes whose stored
// (parent, char & mask_w) matches the query. It stops at the first unset
// cell or once out is full. Returns the number of candidates written.
func (h *hashIndex) candidates(d *dictionary, parent, char, w int, out *[maxSearch]int) int {
	mask := maskFor(w)
	maskedChar := char & mask
	index, stride := probeStart(parent, maskedChar)
	col := w % wordSize

	n := 0
	for h.table[index][col] != codeUnset {
		code := h.table[index][col]
		e := d.entry(code)
		if e.parentCode == parent && (e.charCode&mask) == maskedChar {
			out[n] = code
			n++
			if n >= maxSearch {
				return n
			}
		}
		index = probeNext(index, stride)
	}
	return n
}
