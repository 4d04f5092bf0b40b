// Package scatter implements a cache-line-oblivious table representation
// for secret-indexed lookups, ported from pycryptodome's modexp_utils.c
// scatter()/gather(). N equally sized arrays are interleaved across 64-byte
// cache lines so that gathering any index touches every cache line exactly
// once, in the same order, regardless of which index was requested — only
// the intra-line byte offset depends on the secret index.
package scatter

import "errors"

const cacheLineSize = 64

// ErrInvalidCount is returned when nrArrays is not a power of two, or
// exceeds 64.
var ErrInvalidCount = errors.New("scatter: array count must be a power of two, at most 64")

// ErrEmptyArray is returned for a zero-length array.
var ErrEmptyArray = errors.New("scatter: array length must be non-zero")

// Table is the scattered, cache-line-aligned representation of nrArrays
// equally sized byte arrays.
type Table struct {
	scattered []byte   // cacheLines * 64 bytes, 64-byte aligned by construction (slice backing array)
	scramble  []uint16 // one scramble word per cache line
	nrArrays  int
	arrayLen  int
	pieceLen  int
}

// New lays arrays (all of length arrayLen) out into a Table, deriving the
// per-cache-line scramble words from seed via SipHash-2-4.
func New(arrays [][]byte, arrayLen int, seed uint64) (*Table, error) {
	nrArrays := len(arrays)

	if nrArrays == 0 || nrArrays > cacheLineSize || nrArrays&(nrArrays-1) != 0 {
		return nil, ErrInvalidCount
	}
	if arrayLen == 0 {
		return nil, ErrEmptyArray
	}

	for _, a := range arrays {
		if len(a) != arrayLen {
			return nil, ErrEmptyArray
		}
	}

	pieceLen := cacheLineSize / nrArrays
	cacheLines := (arrayLen + pieceLen - 1) / pieceLen

	t := &Table{
		scattered: make([]byte, cacheLines*cacheLineSize),
		scramble:  expandSeed(seed, cacheLines),
		nrArrays:  nrArrays,
		arrayLen:  arrayLen,
		pieceLen:  pieceLen,
	}

	mask := uint(nrArrays - 1)
	remaining := arrayLen

	for i := 0; i < cacheLines; i++ {
		line := t.scattered[i*cacheLineSize : (i+1)*cacheLineSize]
		offset := i * pieceLen

		s := pieceLen
		if remaining < s {
			s = remaining
		}

		for j := 0; j < nrArrays; j++ {
			slot := int(slotFor(uint(j), t.scramble[i], mask))
			dst := line[pieceLen*slot : pieceLen*slot+s]
			copy(dst, arrays[j][offset:offset+s])
		}

		remaining -= pieceLen
	}

	return t, nil
}

// slotFor computes the scrambled position of array j within a cache line,
// given that line's scramble word and nrArrays-1 as a mask. The multiplier
// (scramble>>8)|1 is forced odd so this map is a permutation of [0, nrArrays).
func slotFor(j uint, scramble uint16, mask uint) uint {
	mult := (uint(scramble) >> 8) | 1
	add := uint(scramble) & 0xFF
	return (j*mult + add) & mask
}

// Gather reconstructs array[index] into out (which must have length
// arrayLen). It visits every cache line in ascending order exactly once,
// regardless of index — only the byte offset read within each line depends
// on index.
func (t *Table) Gather(out []byte, index uint) {
	mask := uint(t.nrArrays - 1)
	remaining := t.arrayLen
	offset := 0

	cacheLines := len(t.scattered) / cacheLineSize

	for i := 0; i < cacheLines; i++ {
		slot := int(slotFor(index, t.scramble[i], mask))
		line := t.scattered[i*cacheLineSize : (i+1)*cacheLineSize]

		s := t.pieceLen
		if remaining < s {
			s = remaining
		}

		copy(out[offset:offset+s], line[t.pieceLen*slot:t.pieceLen*slot+s])

		remaining -= t.pieceLen
		offset += t.pieceLen
	}
}

// lineAccess is one step of a Gather trace: which cache line was read, and
// which scrambled slot within it.
type lineAccess struct {
	Line, Slot int
}

// accessTrace replays Gather(_, index)'s line/slot sequence without copying
// any data. It exists so tests can assert that the set and order of cache
// lines touched is the same for every index — only the slot chosen within
// each line depends on the secret index.
func (t *Table) accessTrace(index uint) []lineAccess {
	mask := uint(t.nrArrays - 1)
	cacheLines := len(t.scattered) / cacheLineSize

	trace := make([]lineAccess, cacheLines)
	for i := 0; i < cacheLines; i++ {
		trace[i] = lineAccess{Line: i, Slot: int(slotFor(index, t.scramble[i], mask))}
	}
	return trace
}

// ArrayLen returns the length in bytes of each stored array.
func (t *Table) ArrayLen() int { return t.arrayLen }

// NrArrays returns the number of stored arrays.
func (t *Table) NrArrays() int { return t.nrArrays }
