package field

import "crypto/subtle"

// Element is a field element bound to a *Context, always stored in
// Montgomery form (value·R mod p, never the plain value). An Element must
// only ever be combined with other Elements of the same Context.
type Element struct {
	ctx *Context
	w   []uint64
}

// NewElement returns the zero element of ctx.
func (c *Context) NewElement() *Element {
	return &Element{ctx: c, w: make([]uint64, c.n)}
}

// One returns the Montgomery encoding of 1.
func (c *Context) One() *Element {
	e := c.NewElement()
	copy(e.w, c.one)
	return e
}

// FromBytes converts a big-endian plain integer into Montgomery form. It
// fails if the value is not strictly smaller than the modulus.
func (c *Context) FromBytes(be []byte) (*Element, error) {
	if len(be) != c.byteLen {
		return nil, ErrWrongLength
	}

	plain := trimLeadingZeroWords(bytesToWords(be))
	padded := make([]uint64, c.n)
	copy(padded, plain)

	if !lessThan(padded, c.mod) {
		return nil, ErrValueTooLarge
	}

	scratch := make([]uint64, 2*c.n+1)
	e := c.NewElement()
	e.w = montMulRaw(padded, c.r2, c.mod, c.m0, c.n, scratch)

	return e, nil
}

// lessThan reports whether a < b for same-length little-endian word slices.
func lessThan(a, b []uint64) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Bytes renders e as a big-endian plain integer, reversing Montgomery form.
func (e *Element) Bytes() []byte {
	one := make([]uint64, e.ctx.n)
	one[0] = 1

	scratch := make([]uint64, 2*e.ctx.n+1)
	plain := montMulRaw(e.w, one, e.ctx.mod, e.ctx.m0, e.ctx.n, scratch)

	return wordsToBytes(plain, e.ctx.byteLen)
}

// Context returns the Element's field context.
func (e *Element) Context() *Context { return e.ctx }

// Set assigns the small non-negative integer v (typically 0 or 1) to e, in
// Montgomery form.
func (e *Element) Set(v uint64) *Element {
	if v == 0 {
		for i := range e.w {
			e.w[i] = 0
		}
		return e
	}

	plain := make([]uint64, e.ctx.n)
	plain[0] = v
	scratch := make([]uint64, 2*e.ctx.n+1)
	e.w = montMulRaw(plain, e.ctx.r2, e.ctx.mod, e.ctx.m0, e.ctx.n, scratch)

	return e
}

// Copy overwrites e with src. Both must share the same Context.
func (e *Element) Copy(src *Element) *Element {
	copy(e.w, src.w)
	return e
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	out := e.ctx.NewElement()
	copy(out.w, e.w)
	return out
}

// Add sets e = a + b mod p and returns e.
func (e *Element) Add(a, b *Element) *Element {
	e.w = addRaw(a.w, b.w, a.ctx.mod)
	return e
}

// Sub sets e = a - b mod p and returns e.
func (e *Element) Sub(a, b *Element) *Element {
	e.w = subRaw(a.w, b.w, a.ctx.mod)
	return e
}

// Mul sets e = a·b·R⁻¹ mod p (the Montgomery product) using scratch as
// working memory, and returns e. scratch must have length >= 2n+1.
func (e *Element) Mul(a, b *Element, scratch []uint64) *Element {
	e.w = montMulRaw(a.w, b.w, a.ctx.mod, a.ctx.m0, a.ctx.n, scratch)
	return e
}

// Square sets e = a² (Montgomery form) using scratch as working memory.
func (e *Element) Square(a *Element, scratch []uint64) *Element {
	return e.Mul(a, a, scratch)
}

// IsZero returns 1 if e == 0, and 0 otherwise, without a data-dependent branch.
func (e *Element) IsZero() uint64 {
	var acc uint64
	for _, word := range e.w {
		acc |= word
	}
	return isZeroWord(acc)
}

// IsOne returns 1 if e encodes the field element 1, and 0 otherwise.
func (e *Element) IsOne() uint64 {
	return e.Equal(e.ctx.One())
}

// Equal returns 1 if e == u, and 0 otherwise, in constant time. The
// final word-to-bit collapse goes through crypto/subtle.ConstantTimeCompare
// rather than a hand-rolled mask, the way element comparisons eventually
// bottom out on subtle in the teacher's encode/decode path.
func (e *Element) Equal(u *Element) uint64 {
	var acc uint64
	for i := range e.w {
		acc |= e.w[i] ^ u.w[i]
	}

	var zero [8]byte
	var accBytes [8]byte
	for i := 0; i < 8; i++ {
		accBytes[i] = byte(acc >> (8 * i))
	}

	return uint64(subtle.ConstantTimeCompare(accBytes[:], zero[:]))
}

// CMove sets e to a if the low bit of cond is 1, and to b otherwise (only
// cond&1 is examined) — a branch-free,
// mask-and-blend conditional move. Each word is split into two 32-bit
// halves before going through crypto/subtle.ConstantTimeSelect, since that
// helper operates on platform ints (32 bits on some architectures) and a
// direct uint64 round-trip would truncate there.
func (e *Element) CMove(cond uint64, a, b *Element) *Element {
	sel := subtle.ConstantTimeSelect(int(cond&1), 1, 0)
	for i := range e.w {
		hi := subtle.ConstantTimeSelect(sel, int(a.w[i]>>32), int(b.w[i]>>32))
		lo := subtle.ConstantTimeSelect(sel, int(a.w[i]&0xFFFFFFFF), int(b.w[i]&0xFFFFFFFF))
		e.w[i] = (uint64(uint32(hi)) << 32) | uint64(uint32(lo))
	}
	return e
}

// Zero overwrites e's limbs with zero, for callers that want to scrub a
// secret element's state before it is dropped.
func (e *Element) Zero() {
	for i := range e.w {
		e.w[i] = 0
	}
}

// isZeroWord returns 1 if w == 0, and 0 otherwise, without branching.
func isZeroWord(w uint64) uint64 {
	return 1 ^ ((w | -w) >> 63)
}
