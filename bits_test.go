package mlz

import (
	"errors"
	"testing"
)

func TestSliceBitSource_ReadsInOrder(t *testing.T) {
	src := NewSliceBitSource([]byte{1, 0, 1, 1})
	want := []byte{1, 0, 1, 1}
	for i, w := range want {
		bit, err := src.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit() at %d: %v", i, err)
		}
		if bit != w {
			t.Fatalf("ReadBit() at %d = %d, want %d", i, bit, w)
		}
	}
	if src.Pos() != len(want) {
		t.Fatalf("Pos() = %d, want %d", src.Pos(), len(want))
	}
	if _, err := src.ReadBit(); !errors.Is(err, ErrBitStreamExhausted) {
		t.Fatalf("ReadBit() past end = %v, want ErrBitStreamExhausted", err)
	}
}

func TestSliceBitSink_WritesAndReportsFull(t *testing.T) {
	sink := NewSliceBitSink(3)
	for _, b := range []byte{1, 0, 1} {
		if err := sink.WriteBit(b); err != nil {
			t.Fatalf("WriteBit(%d): %v", b, err)
		}
	}
	if err := sink.WriteBit(1); !errors.Is(err, ErrBitSinkFull) {
		t.Fatalf("WriteBit past capacity = %v, want ErrBitSinkFull", err)
	}
	if got, want := sink.Bits(), []byte{1, 0, 1}; !bytesEqual(got, want) {
		t.Fatalf("Bits() = %v, want %v", got, want)
	}
	if sink.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sink.Len())
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReadCode_LSBFirst(t *testing.T) {
	// bits [1,0,1] with width 3 -> bit0=1, bit1=0, bit2=1 -> code = 0b101 = 5
	src := NewSliceBitSource([]byte{1, 0, 1})
	code, err := readCode(src, 3)
	if err != nil {
		t.Fatalf("readCode: %v", err)
	}
	if code != 5 {
		t.Fatalf("readCode = %d, want 5", code)
	}
}

func TestOutputCode_MSBFirst(t *testing.T) {
	e := NewEncoder(nil)
	sink := NewSliceBitSink(codeBitInit)
	// dicCodeBit starts at codeBitInit; write code 5 (0b0_0000_0101 in 9 bits)
	n, err := e.outputCode(sink, 5)
	if err != nil {
		t.Fatalf("outputCode: %v", err)
	}
	if n != codeBitInit {
		t.Fatalf("outputCode wrote %d bits, want %d", n, codeBitInit)
	}
	// MSB-first: the last bit written should be the LSB of 5 (1).
	bits := sink.Bits()
	if bits[len(bits)-1] != 1 {
		t.Fatalf("last emitted bit = %d, want 1 (LSB of 5)", bits[len(bits)-1])
	}
	if bits[0] != 0 {
		t.Fatalf("first emitted bit = %d, want 0 (MSB of 5 in %d bits)", bits[0], codeBitInit)
	}
}
