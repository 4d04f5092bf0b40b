package scatter

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// expandSeed derives one 16-bit scramble word per cache line from seed,
// keyed SipHash-2-4 of a little-endian cache-line counter — the same
// "keyed PRF of a counter" construction as pycryptodome's expand_seed, which
// draws successive 16-byte SipHash blocks to fill an arbitrary-length
// buffer. github.com/dchest/siphash exposes only a 64-bit Hash, not a
// 128-bit variant, so here each cache line gets its own 64-bit SipHash call
// over its own counter, keeping the low 16 bits.
func expandSeed(seed uint64, cacheLines int) []uint16 {
	// The original doubles the 8 seed bytes into a 16-byte SipHash key
	// (seed_byte_i, seed_byte_i) x 8; dchest/siphash takes the key as two
	// 64-bit halves k0, k1 instead of raw bytes, so we reproduce the same
	// doubled-byte key material through that API.
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], seed)

	var keyBytes [16]byte
	for i := 0; i < 8; i++ {
		keyBytes[2*i] = seedBytes[i]
		keyBytes[2*i+1] = seedBytes[i]
	}

	k0 := binary.LittleEndian.Uint64(keyBytes[0:8])
	k1 := binary.LittleEndian.Uint64(keyBytes[8:16])

	out := make([]uint16, cacheLines)

	var counter [4]byte
	for i := range out {
		binary.LittleEndian.PutUint32(counter[:], uint32(i))
		h := siphash.Hash(k0, k1, counter[:])
		out[i] = uint16(h)
	}

	return out
}
