package field

import "math/bits"

// montMulRaw computes a·b·R⁻¹ mod m using coarsely integrated operand
// scanning (CIOS), where R = 2^(64n). scratch must have length at least
// 2n+1; it is used as the running accumulator, so the caller's buffer is
// reused across calls. The returned n-word result, and the temporary of the
// final conditional subtraction, are freshly allocated on every call.
// a, b, m are n-word little-endian limb slices and must already be < m
// (this routine does not reduce wide inputs).
func montMulRaw(a, b, m []uint64, m0 uint64, n int, scratch []uint64) []uint64 {
	t := scratch[:n+2]
	for i := range t {
		t[i] = 0
	}

	for i := 0; i < n; i++ {
		var carry uint64

		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(a[i], b[j])

			var c uint64
			lo, c = bits.Add64(lo, t[j], 0)
			hi, _ = bits.Add64(hi, 0, c)

			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)

			t[j] = lo
			carry = hi
		}

		sum, c := bits.Add64(t[n], carry, 0)
		t[n] = sum
		t[n+1] += c

		// Choose u so that t[0] + u*m[0] is a multiple of 2^64 (u = t[0]*m0 mod 2^64).
		u := t[0] * m0
		carry = 0

		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(u, m[j])

			var c uint64
			lo, c = bits.Add64(lo, t[j], 0)
			hi, _ = bits.Add64(hi, 0, c)

			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)

			t[j] = lo
			carry = hi
		}

		sum, c = bits.Add64(t[n], carry, 0)
		t[n] = sum
		t[n+1] += c

		// Shift t right by one word: t[0] is now 0 by construction of u.
		copy(t[0:n+1], t[1:n+2])
		t[n+1] = 0
	}

	out := make([]uint64, n)
	copy(out, t[:n])

	// t[n] is the carry out of the top word: the CIOS result is below 2m,
	// which exceeds 2^(64n) whenever 2m > R, so it takes part in the reduction.
	return reduceOnce(out, m, t[n])
}

// reduceOnce subtracts m once, constant-time, from the value
// carry·2^(64n) + x if that value is >= m, and returns its low n words.
// carry must be 0 or 1.
func reduceOnce(x, m []uint64, carry uint64) []uint64 {
	n := len(m)
	sub := make([]uint64, n)

	var borrow uint64
	for i := 0; i < n; i++ {
		sub[i], borrow = bits.Sub64(x[i], m[i], borrow)
	}

	// carry == 0 and borrow == 1 means the value is < m (no reduction
	// needed); otherwise it is >= m.
	mask := -(carry | (1 - borrow))
	for i := 0; i < n; i++ {
		x[i] = (sub[i] & mask) | (x[i] & ^mask)
	}

	return x
}

// addRaw computes (a+b) mod m.
func addRaw(a, b, m []uint64) []uint64 {
	return addModRaw(a, b, m)
}

// subRaw computes (a-b) mod m via conditional addition of m on borrow.
func subRaw(a, b, m []uint64) []uint64 {
	n := len(m)
	diff := make([]uint64, n)

	var borrow uint64
	for i := 0; i < n; i++ {
		diff[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}

	added := make([]uint64, n)
	var carry uint64
	for i := 0; i < n; i++ {
		added[i], carry = bits.Add64(diff[i], m[i], carry)
	}

	mask := -borrow
	for i := 0; i < n; i++ {
		diff[i] = (added[i] & mask) | (diff[i] & ^mask)
	}

	return diff
}
