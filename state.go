// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package mlz

// codecState holds the five fields whose invariants (spec §3) must hold at
// all times between operations:
//
//	currentDicIndexMax == 2^dicCodeBit
//	bumpCode            == currentDicIndexMax - 1
//	firstCode <= nextCode <= tableSize-1
//	codeBitInit <= dicCodeBit <= codeBitMax
type codecState struct {
	dicCodeBit         int
	currentDicIndexMax int
	bumpCode           int
	nextCode           int
	freezeFlag         bool
}

// reset restores the initial state: dicCodeBit = codeBitInit, nextCode =
// firstCode, not frozen.
func (s *codecState) reset() {
	s.dicCodeBit = codeBitInit
	s.currentDicIndexMax = dicIndexInit
	s.bumpCode = dicIndexInit - 1
	s.nextCode = firstCode
	s.freezeFlag = false
}

// widen doubles the code space: dicCodeBit++, currentDicIndexMax *= 2,
// bumpCode = currentDicIndexMax - 1. Called when nextCode is about to reach
// bumpCode and there is still room to grow (spec §4.5).
func (s *codecState) widen() {
	s.dicCodeBit++
	s.currentDicIndexMax *= 2
	s.bumpCode = s.currentDicIndexMax - 1
}

// atCapacity reports whether the code space is already at its maximum, so a
// widen is impossible and a flush is required instead.
func (s *codecState) atCapacity() bool {
	return s.currentDicIndexMax >= dicIndexMax
}

// full reports whether installing one more entry would leave no room
// before the next bump/flush decision (nextCode+1 >= bumpCode).
func (s *codecState) full() bool {
	return s.nextCode+1 >= s.bumpCode
}
