package window

import "testing"

// bitsManual extracts the bits of exp (big-endian) as a []uint, MSB first,
// as an independent reference for checking LR/RL against.
func bitsManual(exp []byte) []uint {
	out := make([]uint, 0, len(exp)*8)
	for _, b := range exp {
		for i := 7; i >= 0; i-- {
			out = append(out, uint((b>>uint(i))&1))
		}
	}
	return out
}

func TestLRWidthOne(t *testing.T) {
	exp := []byte{0xB4, 0x01} // 1011 0100 0000 0001

	want := bitsManual(exp)
	cursor := NewLR(1, exp)

	if cursor.NumWindows() != uint(len(want)) {
		t.Fatalf("NumWindows = %d, want %d", cursor.NumWindows(), len(want))
	}

	for i, w := range want {
		got := cursor.Next()
		if got != w {
			t.Fatalf("bit %d: got %d want %d", i, got, w)
		}
	}
}

func TestLRWidthFive(t *testing.T) {
	exp := []byte{0xB4, 0x5A, 0xC1}

	bits := bitsManual(exp)
	width := uint(5)
	bitLen := uint(len(bits))
	numWin := (bitLen + width - 1) / width
	firstLen := bitLen % width
	if firstLen == 0 {
		firstLen = width
	}

	// Build expected windows MSB-first by walking `bits` in chunks, first
	// chunk sized firstLen, the rest sized width.
	var want []uint
	idx := uint(0)
	chunk := firstLen
	for idx < bitLen {
		end := idx + chunk
		var v uint
		for _, b := range bits[idx:end] {
			v = (v << 1) | b
		}
		want = append(want, v)
		idx = end
		chunk = width
	}

	cursor := NewLR(width, exp)
	if cursor.NumWindows() != numWin {
		t.Fatalf("NumWindows = %d, want %d", cursor.NumWindows(), numWin)
	}

	for i, w := range want {
		got := cursor.Next()
		if got != w {
			t.Fatalf("window %d: got %d want %d", i, got, w)
		}
	}
}

func TestRLWidthFour(t *testing.T) {
	exp := []byte{0xB4, 0x5A}

	bits := bitsManual(exp) // MSB first, 16 bits
	width := uint(4)

	// Expected RL windows, LSB-first: reverse the bit order, chunk from
	// the low end.
	rev := make([]uint, len(bits))
	for i, b := range bits {
		rev[len(bits)-1-i] = b
	}

	var want []uint
	for i := 0; i < len(rev); i += int(width) {
		var v uint
		for j := int(width) - 1; j >= 0; j-- {
			v = (v << 1) | rev[i+j]
		}
		want = append(want, v)
	}

	cursor := NewRL(width, exp)
	if cursor.NumWindows() != uint(len(want)) {
		t.Fatalf("NumWindows = %d, want %d", cursor.NumWindows(), len(want))
	}

	for i, w := range want {
		got := cursor.Next()
		if got != w {
			t.Fatalf("window %d: got %d want %d", i, got, w)
		}
	}
}

func TestRLWidthOneMatchesBitsReversed(t *testing.T) {
	exp := []byte{0x01, 0x80} // bit pattern: 0000000110000000

	bits := bitsManual(exp)
	cursor := NewRL(1, exp)

	for i := len(bits) - 1; i >= 0; i-- {
		got := cursor.Next()
		if got != bits[i] {
			t.Fatalf("RL bit %d: got %d want %d", i, got, bits[i])
		}
	}
}
