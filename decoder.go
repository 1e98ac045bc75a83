// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

import "github.com/sirupsen/logrus"

// Decoder reads variable-width codes from a BitSource, handles reserved
// codes, and reconstructs symbols by walking parent chains through its
// dictionary, installing new entries to mirror the encoder that produced
// the stream (spec §4.3, component C). A Decoder does not carry a backup
// shadow; only Encoder does (spec §3).
type Decoder struct {
	dict  dictionary
	state codecState
	ctx   *Context

	// lastStringCode and charCode track decode state across reads within
	// one Decompress call; "none" is represented by codeUnset.
	lastStringCode int
	charCode       int
}

// NewDecoder allocates a Decoder and flushes it to the initial state.
func NewDecoder(opts *Options) *Decoder {
	opts = opts.resolve()
	d := &Decoder{ctx: opts.Context}
	d.Flush()
	return d
}

// Flush resets the dictionary and state to the initial state, preserving
// allocations (spec §4.1 flush()).
func (d *Decoder) Flush() {
	d.dict.flush()
	d.state.reset()
	d.lastStringCode = codeUnset
	d.charCode = codeUnset
}

// readCode reads dicCodeBit bits from src, LSB-first within the field: the
// first bit read becomes bit 0 of the returned code (spec §6 bit packing).
func readCode(src BitSource, width int) (int, error) {
	code := 0
	for i := 0; i < width; i++ {
		bit, err := src.ReadBit()
		if err != nil {
			return 0, err
		}
		code |= int(bit) << i
	}
	return code, nil
}

// decodeString reconstructs the substring labeled by code into buff,
// right-to-left, by walking parentCode chains (spec §4.3 decode_string).
// It returns the number of bytes written and the literal that terminates
// the chain (firstChar), or an error if a bounds invariant is violated.
func (d *Decoder) decodeString(buff []byte, code int) (int, int, error) {
	current := code
	firstChar := codeUnset
	count := 0

	for current != codeUnset {
		if current < firstCode {
			firstChar = current
			if 0 >= len(buff) {
				return count, firstChar, d.ctx.errorf(ErrChainOffsetOverflow,
					logrus.Fields{"code": code}, "mlz: output chars overflow")
			}
			buff[0] = byte(current)
			count++
			return count, firstChar, nil
		}

		e := d.dict.entry(current)
		offset := e.matchLen - 1
		if offset < 0 || offset >= len(buff) {
			return count, firstChar, d.ctx.errorf(ErrChainOffsetOverflow,
				logrus.Fields{"code": code, "offset": offset}, "mlz: offset error")
		}
		buff[offset] = byte(e.charCode)
		count++

		current = e.parentCode
		if current < 0 || current > dicIndexMax-1 {
			return count, firstChar, d.ctx.errorf(ErrChainIndexOutOfRange,
				logrus.Fields{"code": code, "parent": current}, "mlz: dic index error")
		}
	}

	return count, firstChar, nil
}

// Decompress reads codes from src until outputChars >= len(out) (or size,
// if smaller than len(out)), reconstructing the original bytes into out
// (spec §4.3). It returns the number of bytes written and, on a
// stream-corruption or table-overflow error, a non-nil error alongside the
// partial count.
func (d *Decoder) Decompress(src BitSource, size int, out []byte) (int, error) {
	if size > len(out) {
		size = len(out)
	}

	outputChars := 0
	for outputChars < size {
		code, err := readCode(src, d.state.dicCodeBit)
		if err != nil {
			return outputChars, d.ctx.errorf(ErrBitStreamExhausted,
				logrus.Fields{"have": outputChars, "want": size}, "mlz: truncated bit stream")
		}

		switch {
		case code == flushCode || code == maxCode:
			d.Flush()

		case code == freezeCode:
			d.state.freezeFlag = true

		case code > d.state.currentDicIndexMax:
			return outputChars, d.ctx.errorf(ErrCodeOutOfRange,
				logrus.Fields{"code": code, "max": d.state.currentDicIndexMax},
				"mlz: code %d exceeds maximum %d", code, d.state.currentDicIndexMax)

		case code == d.state.bumpCode:
			d.state.widen()

		case code >= d.state.nextCode:
			// KωK case: the encoder installed this code on the same step
			// that emitted it, so the decoder has not seen it yet.
			n, firstChar, err := d.decodeString(out[outputChars:], d.lastStringCode)
			if err != nil {
				return outputChars, err
			}
			outputChars += n
			d.charCode = firstChar

			n, firstChar, err = d.decodeString(out[outputChars:], d.charCode)
			if err != nil {
				return outputChars, err
			}
			outputChars += n
			d.charCode = firstChar

			if err := d.install(d.lastStringCode, d.charCode); err != nil {
				return outputChars, err
			}
			d.lastStringCode = code

		default:
			n, firstChar, err := d.decodeString(out[outputChars:], code)
			if err != nil {
				return outputChars, err
			}
			outputChars += n
			d.charCode = firstChar

			if !d.state.freezeFlag && d.lastStringCode != codeUnset {
				if err := d.install(d.lastStringCode, d.charCode); err != nil {
					return outputChars, err
				}
			}
			d.lastStringCode = code
		}
	}

	return outputChars, nil
}

// install adds the next dictionary entry (parent=lastStringCode,
// char=firstChar of the string just decoded) and advances nextCode,
// reporting table overflow if there is no room left.
func (d *Decoder) install(parent, char int) error {
	if d.state.nextCode >= tableSize-1 {
		return d.ctx.errorf(ErrTableOverflow,
			logrus.Fields{"nextCode": d.state.nextCode}, "mlz: too many dictionary codes")
	}
	d.dict.install(d.state.nextCode, parent, char)
	d.state.nextCode++
	return nil
}
