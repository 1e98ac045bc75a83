// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

import "github.com/sirupsen/logrus"

// Encoder performs, for each input position, a recursive longest-match
// search using the masked hash index, emits the matching code, installs
// the new child entry, and drives the bump/flush transitions
// (spec §4.4, component D). It never emits freezeCode and does not read
// freezeFlag. Unlike Decoder, Encoder carries a backup
// shadow of its full state so an outer codec can speculatively encode and
// roll back (spec §3, §4.4 Backup/restore).
type Encoder struct {
	dict  dictionary
	hash  hashIndex
	state codecState
	ctx   *Context

	backup struct {
		dict  dictionary
		hash  hashIndex
		state codecState
	}

	// input/mask are set for the duration of one Encode call; search reads
	// them directly, mirroring mlz_search_dict's use of mp_input_buff.
	input []byte
	mask  []byte
}

// NewEncoder allocates an Encoder and flushes it to the initial state.
func NewEncoder(opts *Options) *Encoder {
	opts = opts.resolve()
	e := &Encoder{ctx: opts.Context}
	e.Flush()
	return e
}

// Flush resets the dictionary, hash index, and state to the initial state,
// preserving allocations.
func (e *Encoder) Flush() {
	e.dict.flush()
	e.hash.flush()
	e.state.reset()
}

// Backup snapshots the dictionary, hash index, and all state fields into a
// shadow that Restore can copy back (spec §4.4 Backup/restore).
func (e *Encoder) Backup() {
	e.backup.dict = e.dict
	e.backup.hash = e.hash
	e.backup.state = e.state
}

// Restore copies the shadow snapshotted by the last Backup call back over
// the live dictionary, hash index, and state.
func (e *Encoder) Restore() {
	e.dict = e.backup.dict
	e.hash = e.backup.hash
	e.state = e.backup.state
}

// outputCode emits code through sink at the current width, MSB-first
// within the field, as one-bit-per-byte writes (spec §6 bit packing). It
// returns the number of bits actually written, which is less than the
// field width only if sink ran out of capacity.
func (e *Encoder) outputCode(sink BitSink, code int) (int, error) {
	width := e.state.dicCodeBit
	for i := 0; i < width; i++ {
		bit := byte((code >> (width - i - 1)) & 0x01)
		if err := sink.WriteBit(bit); err != nil {
			return i, e.ctx.errorf(ErrBitSinkFull,
				logrus.Fields{"bitsWritten": i, "width": width}, "mlz: bit sink capacity exceeded")
		}
	}
	return width, nil
}

// Encode compresses input against mask (one mask-width byte per input
// byte) and writes the resulting codes into sink, returning the number of
// bits written (spec §4.4).
func (e *Encoder) Encode(input, mask []byte, sink BitSink) (int, error) {
	e.input = input
	e.mask = mask

	position := 0
	outputBits := 0
	lastStringCode := codeUnset

	for position < len(input) {
		matchLen, stringCode := e.search(lastStringCode, position)

		n, err := e.outputCode(sink, stringCode)
		outputBits += n
		if err != nil {
			return outputBits, err
		}

		if position+matchLen >= len(input) {
			position += matchLen
			break
		}

		switch {
		case e.state.full() && e.state.atCapacity():
			n, err := e.outputCode(sink, flushCode)
			outputBits += n
			if err != nil {
				return outputBits, err
			}
			e.Flush()
			position += matchLen
			lastStringCode = codeUnset
			continue

		case e.state.full():
			n, err := e.outputCode(sink, e.state.bumpCode)
			outputBits += n
			if err != nil {
				return outputBits, err
			}
			e.state.widen()
		}

		charCode := int(input[position+matchLen])
		if err := e.install(stringCode, charCode); err != nil {
			return outputBits, err
		}

		position += matchLen
		lastStringCode = charCode
	}

	return outputBits, nil
}

// install adds the next dictionary entry and its hash rows, and advances
// nextCode, reporting table overflow if there is no room left.
func (e *Encoder) install(parent, char int) error {
	if e.state.nextCode >= tableSize-1 {
		return e.ctx.errorf(ErrTableOverflow,
			logrus.Fields{"nextCode": e.state.nextCode}, "mlz: too many dictionary codes")
	}
	code := e.state.nextCode
	e.dict.install(code, parent, char)
	e.hash.installHashed(parent, char, code)
	e.state.nextCode++
	return nil
}

// search performs the recursive longest-match search described in
// spec §4.4. It returns the matched length and the dictionary (or
// literal) code representing the matched string.
func (e *Encoder) search(lastCharCode, position int) (matchLen int, stringCode int) {
	if position >= len(e.input) {
		return 0, codeUnset
	}

	var root int
	switch {
	case lastCharCode == codeUnset:
		root = int(e.input[position])
		matchLen = 1
	case lastCharCode < firstCode:
		root = lastCharCode
		matchLen = 1
	default:
		root = lastCharCode
		matchLen = e.dict.entry(lastCharCode).matchLen
	}
	stringCode = root

	if position+1 >= len(e.input) {
		return matchLen, stringCode
	}

	c := int(e.input[position+1])
	w := int(e.mask[position+1])

	var cands [maxSearch]int
	n := e.hash.candidates(&e.dict, root, c, w, &cands)
	if n == 0 {
		return matchLen, stringCode
	}

	if position+2 < len(e.input) {
		for i := 0; i < n; i++ {
			candMatchLen, candStringCode := e.search(cands[i], position+1)
			if candMatchLen > matchLen {
				matchLen = candMatchLen
				stringCode = candStringCode
			}
		}
	}

	return matchLen, stringCode
}
