package scatter

import (
	"bytes"
	"testing"
)

func buildArrays(nrArrays, arrayLen int) [][]byte {
	arrays := make([][]byte, nrArrays)
	for i := range arrays {
		a := make([]byte, arrayLen)
		for j := range a {
			a[j] = byte(i*31 + j)
		}
		arrays[i] = a
	}
	return arrays
}

func TestGatherRoundTrip(t *testing.T) {
	arrays := buildArrays(16, 100)

	tbl, err := New(arrays, 100, 0xdeadbeefcafef00d)
	if err != nil {
		t.Fatal(err)
	}

	for i, want := range arrays {
		got := make([]byte, 100)
		tbl.Gather(got, uint(i))
		if !bytes.Equal(got, want) {
			t.Fatalf("array %d: got %x want %x", i, got, want)
		}
	}
}

func TestGatherRoundTripUnderDifferentSeeds(t *testing.T) {
	arrays := buildArrays(8, 64)

	tblA, err := New(arrays, 64, 1)
	if err != nil {
		t.Fatal(err)
	}
	tblB, err := New(arrays, 64, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Both tables must still answer Gather correctly even though their
	// internal scrambled layout differs.
	for i, want := range arrays {
		gotA := make([]byte, 64)
		tblA.Gather(gotA, uint(i))
		if !bytes.Equal(gotA, want) {
			t.Fatalf("table A array %d mismatch", i)
		}

		gotB := make([]byte, 64)
		tblB.Gather(gotB, uint(i))
		if !bytes.Equal(gotB, want) {
			t.Fatalf("table B array %d mismatch", i)
		}
	}
}

func TestNewRejectsNonPowerOfTwoCount(t *testing.T) {
	arrays := buildArrays(5, 32)
	if _, err := New(arrays, 32, 0); err != ErrInvalidCount {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestNewRejectsEmptyArray(t *testing.T) {
	if _, err := New([][]byte{}, 0, 0); err == nil {
		t.Fatal("expected error for empty array set")
	}
}

func TestNewRejectsMismatchedLength(t *testing.T) {
	arrays := [][]byte{make([]byte, 10), make([]byte, 11)}
	if _, err := New(arrays, 10, 0); err == nil {
		t.Fatal("expected error for mismatched array length")
	}
}

// TestGatherCacheLineSequenceIndependentOfIndex exercises property 9: the
// sequence of cache lines a Gather touches must be identical for every
// index, with only the scrambled slot read inside each line varying with
// the (secret) index.
func TestGatherCacheLineSequenceIndependentOfIndex(t *testing.T) {
	const nrArrays = 4
	arrays := buildArrays(nrArrays, 100)

	tbl, err := New(arrays, 100, 0x00112233)
	if err != nil {
		t.Fatal(err)
	}

	var lineSeqs [][]int
	var slotSeqs [][]int
	for idx := uint(0); idx < nrArrays; idx++ {
		trace := tbl.accessTrace(idx)
		lines := make([]int, len(trace))
		slots := make([]int, len(trace))
		for i, a := range trace {
			lines[i] = a.Line
			slots[i] = a.Slot
		}
		lineSeqs = append(lineSeqs, lines)
		slotSeqs = append(slotSeqs, slots)
	}

	for idx := 1; idx < nrArrays; idx++ {
		if !intSliceEqual(lineSeqs[0], lineSeqs[idx]) {
			t.Fatalf("cache-line sequence for index %d (%v) differs from index 0 (%v)", idx, lineSeqs[idx], lineSeqs[0])
		}
	}

	allSlotsEqual := true
	for idx := 1; idx < nrArrays; idx++ {
		if !intSliceEqual(slotSeqs[0], slotSeqs[idx]) {
			allSlotsEqual = false
		}
	}
	if allSlotsEqual {
		t.Fatal("expected the scrambled slot to vary with index, got identical slot sequences for every index")
	}
}

func intSliceEqual(a, b []int) bool {
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

func TestSlotForIsPermutation(t *testing.T) {
	const nrArrays = 16
	mask := uint(nrArrays - 1)

	for scramble := 0; scramble < 20; scramble++ {
		seen := make(map[uint]bool)
		for j := uint(0); j < nrArrays; j++ {
			s := slotFor(j, uint16(scramble*997), mask)
			if s >= nrArrays {
				t.Fatalf("slot %d out of range", s)
			}
			if seen[s] {
				t.Fatalf("slotFor is not a permutation for scramble=%d: slot %d repeated", scramble, s)
			}
			seen[s] = true
		}
	}
}
