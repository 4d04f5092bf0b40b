// Package field implements constant-time Montgomery arithmetic over an
// arbitrary odd prime field F_p, generalized from fixed-width per-curve
// implementations (such as the fiat-crypto-generated field used by
// github.com/bytemare/secp256k1) to an arbitrary word count so the same code
// serves P-256, P-384, and P-521 from one Context.
package field

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// wordBits is the number of bits in one limb.
const wordBits = 64

// ErrNotOdd is returned when a prime candidate has a trailing zero bit.
var ErrNotOdd = errors.New("field: modulus must be odd")

// ErrZeroModulus is returned for a zero-length or zero-valued modulus.
var ErrZeroModulus = errors.New("field: modulus must be non-zero")

// ErrValueTooLarge is returned when an encoded integer is not smaller than the modulus.
var ErrValueTooLarge = errors.New("field: value is not smaller than the modulus")

// ErrWrongLength is returned when a byte slice does not match the context's byte length.
var ErrWrongLength = errors.New("field: wrong byte length")

// Context is an immutable descriptor of a prime p: it carries p itself, the
// word count n = ceil(bitlen(p)/64), R² mod p, m0 = −p⁻¹ mod 2⁶⁴, and the
// encoding of 1 in Montgomery form. All field operations go through a
// Context; a Context has no mutable state after NewContext returns.
type Context struct {
	mod     []uint64 // p, n words, little-endian
	r2      []uint64 // R² mod p, n words
	one     []uint64 // R mod p (Montgomery form of 1), n words
	m0      uint64   // −p⁻¹ mod 2⁶⁴
	n       int      // word count
	byteLen int      // byte length of p
}

// NewContext builds a Montgomery context for the prime encoded big-endian in
// modulusBE. It fails if the value is even, zero, or of zero length.
func NewContext(modulusBE []byte) (*Context, error) {
	if len(modulusBE) == 0 {
		return nil, ErrZeroModulus
	}

	mod := bytesToWords(modulusBE)
	mod = trimLeadingZeroWords(mod)

	if len(mod) == 0 {
		return nil, ErrZeroModulus
	}
	if mod[0]&1 == 0 {
		return nil, ErrNotOdd
	}

	n := len(mod)

	ctx := &Context{
		mod:     mod,
		n:       n,
		byteLen: len(modulusBE),
	}

	ctx.m0 = computeM0(mod[0])
	ctx.r2 = computeR2(mod, n)
	ctx.one = computeMontgomeryOne(mod, n, ctx.m0, ctx.r2)

	return ctx, nil
}

// N returns the context's word count.
func (c *Context) N() int { return c.n }

// ByteLen returns the byte length of the field's modulus.
func (c *Context) ByteLen() int { return c.byteLen }

// computeM0 returns −p⁻¹ mod 2⁶⁴ via Newton's iteration for the modular
// inverse of an odd word (doubling precision each step).
func computeM0(p0 uint64) uint64 {
	// p0 is odd, so it is its own inverse mod 2: start there and double
	// the correct bits on each iteration (Hensel lifting / Newton-Raphson
	// for 1/p0 mod 2^64).
	inv := p0
	for i := 0; i < 5; i++ {
		inv *= 2 - p0*inv
	}
	return -inv
}

// computeR2 returns R² mod p where R = 2^(64n), by repeated doubling modulo p.
func computeR2(mod []uint64, n int) []uint64 {
	// Start from 1 and double 2*64*n times, reducing modulo p after each
	// doubling. This avoids needing wide division.
	r := make([]uint64, n)
	r[0] = 1

	for i := 0; i < 2*n*wordBits; i++ {
		r = addModRaw(r, r, mod)
	}

	return r
}

// computeMontgomeryOne returns R mod p (the Montgomery encoding of the
// integer 1), computed as MontMul(R² mod p, 1).
func computeMontgomeryOne(mod []uint64, n int, m0 uint64, r2 []uint64) []uint64 {
	one := make([]uint64, n)
	one[0] = 1
	scratch := make([]uint64, 2*n+1)
	return montMulRaw(one, r2, mod, m0, n, scratch)
}

// bytesToWords interprets a big-endian byte slice as little-endian 64-bit words.
func bytesToWords(be []byte) []uint64 {
	n := (len(be) + 7) / 8
	out := make([]uint64, n)

	// Pad conceptually on the left (most-significant side) to a multiple of 8.
	padded := make([]byte, n*8)
	copy(padded[n*8-len(be):], be)

	for i := 0; i < n; i++ {
		// word i holds bytes [len-8*(i+1) : len-8*i) of padded, big-endian.
		off := len(padded) - 8*(i+1)
		out[i] = binary.BigEndian.Uint64(padded[off : off+8])
	}

	return out
}

// wordsToBytes renders n little-endian words as a big-endian byte slice of
// length byteLen (byteLen may be less than 8*n if the top word's high bytes
// are all zero, as for P-521).
func wordsToBytes(w []uint64, byteLen int) []byte {
	n := len(w)
	full := make([]byte, n*8)

	for i := 0; i < n; i++ {
		off := n*8 - 8*(i+1)
		binary.BigEndian.PutUint64(full[off:off+8], w[i])
	}

	return full[len(full)-byteLen:]
}

func trimLeadingZeroWords(w []uint64) []uint64 {
	i := len(w)
	for i > 0 && w[i-1] == 0 {
		i--
	}
	return w[:i]
}

// addModRaw computes (a+b) mod m for same-length little-endian word slices,
// via a conditional subtraction driven by a branch-free mask.
func addModRaw(a, b, m []uint64) []uint64 {
	n := len(m)
	sum := make([]uint64, n)

	var carry uint64
	for i := 0; i < n; i++ {
		sum[i], carry = bits.Add64(a[i], b[i], carry)
	}

	sub := make([]uint64, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		sub[i], borrow = bits.Sub64(sum[i], m[i], borrow)
	}

	// If borrow == 1 and carry == 0, sum < m: keep sum.
	// Otherwise (carry==1, or no borrow): sum >= m, use sub.
	useSub := carry | (1 - borrow)
	mask := -useSub

	for i := 0; i < n; i++ {
		sum[i] = (sub[i] & mask) | (sum[i] & ^mask)
	}

	return sum
}
