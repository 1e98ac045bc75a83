// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

// dictEntry is one node of the implicit trie over the symbol stream
// (spec §3: "Dictionary entry"). stringCode is not stored explicitly since
// it always equals the entry's own index once installed; matchLen is zero
// for an unset entry and is otherwise always >= 2, so it doubles as the
// occupied flag.
type dictEntry struct {
	parentCode int
	charCode   int
	matchLen   int
}

// set reports whether this entry has been installed since the last flush.
func (e dictEntry) set() bool {
	return e.matchLen != 0
}

// dictionary holds up to tableSize entries, each keyed by its own index
// (spec §4.1, component A). Codes 0..firstCode-1 are implicit literal
// leaves and are never stored here.
type dictionary struct {
	entries [tableSize]dictEntry
}

// flush marks every entry unset. Codes 0..255 remain implicit literals.
func (d *dictionary) flush() {
	for i := range d.entries {
		d.entries[i] = dictEntry{parentCode: codeUnset}
	}
}

// install sets the entry at code and computes matchLen from parent:
// 2 if parent is a literal (< firstCode), else parent.matchLen + 1.
func (d *dictionary) install(code, parent, char int) {
	matchLen := 2
	if parent >= firstCode {
		matchLen = d.entries[parent].matchLen + 1
	}
	d.entries[code] = dictEntry{
		parentCode: parent,
		charCode:   char,
		matchLen:   matchLen,
	}
}

// entry returns the stored tuple at code. Callers must only pass codes in
// [firstCode, tableSize-1]; codes below firstCode are literals and have no
// stored entry.
func (d *dictionary) entry(code int) dictEntry {
	return d.entries[code]
}
