package field

import (
	"math/bits"

	"github.com/nistweier/ecws/window"
)

// Invert sets e = a^(p-2) mod p = a⁻¹ mod p (Fermat's little theorem) and
// returns e. Per spec, a = 0 yields e = 0 (0^k = 0 for any k > 0), which
// this naturally produces since a zero base stays zero throughout the
// square-and-multiply.
//
// Unlike a fixed-curve implementation (which can use an addition chain
// tailored to one known prime), this Context serves three different primes
// from the same code path, so inversion runs the generic left-to-right,
// one-bit-wide windowed exponentiation of package window against the fixed
// exponent p-2. (The curve package's generator fast path reads its scalar
// with the same package's right-to-left cursor, at larger widths.)
func (e *Element) Invert(a *Element) *Element {
	ctx := a.ctx
	expBytes := wordsToBytes(subtractTwo(ctx.mod), ctx.byteLen)

	scratch := make([]uint64, 2*ctx.n+1)

	acc := ctx.One()
	base := a.Clone()
	tmp := ctx.NewElement()

	cursor := window.NewLR(1, expBytes)
	started := false

	for i := uint(0); i < cursor.NumWindows(); i++ {
		bit := cursor.Next()

		if !started {
			if bit == 0 {
				continue
			}
			started = true
		}

		tmp.Square(acc, scratch)
		acc.Copy(tmp)

		tmp.Mul(acc, base, scratch)
		acc.CMove(uint64(bit), tmp, acc)
	}

	if !started {
		// Exponent is zero: p-2 == 0 only for p == 2, which NewContext
		// rejects as even, so this path is unreachable in practice but kept
		// for defensive completeness.
		acc.Set(1)
	}

	e.Copy(acc)

	return e
}

// subtractTwo returns mod-2 as an n-word little-endian slice. mod is assumed
// odd and > 1, in which case this never borrows past the top word. NewContext
// rejects even moduli but accepts the modulus 1, for which the result wraps.
func subtractTwo(mod []uint64) []uint64 {
	out := make([]uint64, len(mod))
	copy(out, mod)

	var borrow uint64
	out[0], borrow = bits.Sub64(out[0], 2, 0)
	for i := 1; i < len(out) && borrow != 0; i++ {
		out[i], borrow = bits.Sub64(out[i], 0, borrow)
	}

	return out
}
