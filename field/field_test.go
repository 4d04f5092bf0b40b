package field

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"
)

// p256Modulus is the NIST P-256 prime, used as a realistic modulus across
// these tests (rather than a tiny toy prime) since the CIOS carry handling
// is exactly where an arbitrary-word-count implementation is most likely to
// break.
const p256Modulus = "FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF"

func testContext(t *testing.T) *Context {
	t.Helper()
	be, err := hex.DecodeString(p256Modulus)
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := NewContext(be)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func bigFromHex(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex %q", s)
	}
	return v
}

func modulusBig(t *testing.T) *big.Int {
	return bigFromHex(t, p256Modulus)
}

func randBelow(t *testing.T, m *big.Int) *big.Int {
	t.Helper()
	v, err := rand.Int(rand.Reader, m)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func elementFromBig(t *testing.T, ctx *Context, v *big.Int) *Element {
	t.Helper()
	be := make([]byte, ctx.ByteLen())
	v.FillBytes(be)
	e, err := ctx.FromBytes(be)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func bigFromElement(e *Element) *big.Int {
	return new(big.Int).SetBytes(e.Bytes())
}

func TestRoundTrip(t *testing.T) {
	ctx := testContext(t)
	m := modulusBig(t)

	for i := 0; i < 50; i++ {
		v := randBelow(t, m)
		e := elementFromBig(t, ctx, v)
		got := bigFromElement(e)
		if got.Cmp(v) != 0 {
			t.Fatalf("round trip mismatch: got %x want %x", got, v)
		}
	}
}

func TestMulAgainstBigInt(t *testing.T) {
	ctx := testContext(t)
	m := modulusBig(t)
	scratch := make([]uint64, 2*ctx.N()+1)

	for i := 0; i < 50; i++ {
		a := randBelow(t, m)
		b := randBelow(t, m)

		ea := elementFromBig(t, ctx, a)
		eb := elementFromBig(t, ctx, b)

		out := ctx.NewElement()
		out.Mul(ea, eb, scratch)

		want := new(big.Int).Mod(new(big.Int).Mul(a, b), m)
		got := bigFromElement(out)

		if got.Cmp(want) != 0 {
			t.Fatalf("mul mismatch: a=%x b=%x got=%x want=%x", a, b, got, want)
		}
	}
}

func TestAddSub(t *testing.T) {
	ctx := testContext(t)
	m := modulusBig(t)

	for i := 0; i < 50; i++ {
		a := randBelow(t, m)
		b := randBelow(t, m)

		ea := elementFromBig(t, ctx, a)
		eb := elementFromBig(t, ctx, b)

		sum := ctx.NewElement()
		sum.Add(ea, eb)
		wantSum := new(big.Int).Mod(new(big.Int).Add(a, b), m)
		if bigFromElement(sum).Cmp(wantSum) != 0 {
			t.Fatalf("add mismatch: a=%x b=%x got=%x want=%x", a, b, bigFromElement(sum), wantSum)
		}

		diff := ctx.NewElement()
		diff.Sub(ea, eb)
		wantDiff := new(big.Int).Mod(new(big.Int).Sub(a, b), m)
		if bigFromElement(diff).Cmp(wantDiff) != 0 {
			t.Fatalf("sub mismatch: a=%x b=%x got=%x want=%x", a, b, bigFromElement(diff), wantDiff)
		}
	}
}

func TestInvert(t *testing.T) {
	ctx := testContext(t)
	m := modulusBig(t)

	for i := 0; i < 20; i++ {
		a := randBelow(t, m)
		if a.Sign() == 0 {
			continue
		}

		ea := elementFromBig(t, ctx, a)
		out := ctx.NewElement()
		out.Invert(ea)

		want := new(big.Int).ModInverse(a, m)
		got := bigFromElement(out)

		if got.Cmp(want) != 0 {
			t.Fatalf("invert mismatch: a=%x got=%x want=%x", a, got, want)
		}
	}
}

func TestInvertZero(t *testing.T) {
	ctx := testContext(t)
	zero := ctx.NewElement()
	out := ctx.NewElement()
	out.Invert(zero)

	if out.IsZero() != 1 {
		t.Fatalf("invert(0) should be 0, got %x", out.Bytes())
	}
}

func TestCMove(t *testing.T) {
	ctx := testContext(t)
	m := modulusBig(t)

	a := elementFromBig(t, ctx, randBelow(t, m))
	b := elementFromBig(t, ctx, randBelow(t, m))

	out := ctx.NewElement()
	out.CMove(1, a, b)
	if out.Equal(a) != 1 {
		t.Fatal("CMove(1, a, b) should select a")
	}

	out.CMove(0, a, b)
	if out.Equal(b) != 1 {
		t.Fatal("CMove(0, a, b) should select b")
	}
}

func TestIsZeroIsOne(t *testing.T) {
	ctx := testContext(t)

	zero := ctx.NewElement()
	if zero.IsZero() != 1 {
		t.Fatal("zero element should report IsZero")
	}

	one := ctx.One()
	if one.IsOne() != 1 {
		t.Fatal("one element should report IsOne")
	}
	if one.IsZero() != 0 {
		t.Fatal("one element should not report IsZero")
	}
}

func TestNewContextRejectsEvenModulus(t *testing.T) {
	even, _ := hex.DecodeString("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFE")
	if _, err := NewContext(even); err == nil {
		t.Fatal("expected error for even modulus")
	}
}

func TestFromBytesRejectsOutOfRange(t *testing.T) {
	ctx := testContext(t)
	tooBig := make([]byte, ctx.ByteLen())
	for i := range tooBig {
		tooBig[i] = 0xFF
	}
	if _, err := ctx.FromBytes(tooBig); err == nil {
		t.Fatal("expected error for value >= modulus")
	}
}
