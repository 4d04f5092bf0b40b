package ecws

import (
	"errors"
	"testing"

	"github.com/nistweier/ecws/curve"
)

func TestNewContextAndPointRoundTrip(t *testing.T) {
	ctx, err := NewContext(curve.P256())
	if err != nil {
		t.Fatal(err)
	}

	g := ctx.Generator()

	x := make([]byte, ctx.ByteLen())
	y := make([]byte, ctx.ByteLen())
	if err := GetXY(x, y, g); err != nil {
		t.Fatal(err)
	}

	p, err := NewPoint(x, y, ctx)
	if err != nil {
		t.Fatal(err)
	}

	if cmp, err := p.Cmp(g); err != nil || cmp != 0 {
		t.Fatal("NewPoint/GetXY round trip through the public API changed the point")
	}
}

func TestNewPointRejectsOffCurveViaPublicAPI(t *testing.T) {
	ctx, err := NewContext(curve.P256())
	if err != nil {
		t.Fatal(err)
	}

	x := make([]byte, ctx.ByteLen())
	y := make([]byte, ctx.ByteLen())
	x[len(x)-1] = 7
	y[len(y)-1] = 7

	_, err = NewPoint(x, y, ctx)
	if err == nil {
		t.Fatal("expected an error for an off-curve point")
	}
	if !errors.Is(err, ErrECPoint) {
		t.Fatalf("expected ErrECPoint, got %v", err)
	}
}

func TestWrapMapsMismatchedContextToErrECCurve(t *testing.T) {
	err := wrap(curve.ErrMismatchedContext)
	if !errors.Is(err, ErrECCurve) {
		t.Fatalf("expected ErrECCurve, got %v", err)
	}
}

func TestCrossContextAddReturnsMismatchedContext(t *testing.T) {
	ctx1, err := NewContext(curve.P256())
	if err != nil {
		t.Fatal(err)
	}
	ctx2, err := NewContext(curve.P256())
	if err != nil {
		t.Fatal(err)
	}

	g1 := ctx1.Generator()
	g2 := ctx2.Generator()

	if err := g1.Add(g2); !errors.Is(err, curve.ErrMismatchedContext) {
		t.Fatalf("expected ErrMismatchedContext for a cross-context Add, got %v", err)
	}
	if !errors.Is(wrap(g1.Add(g2)), ErrECCurve) {
		t.Fatal("wrap should surface a cross-context Add error as ErrECCurve")
	}
}

func TestGeneratorTablesRoundTrip(t *testing.T) {
	ctx, err := NewContext(curve.P384(), curve.WithGeneratorTables(0xC0FFEE))
	if err != nil {
		t.Fatal(err)
	}

	g := ctx.Generator()
	k := make([]byte, ctx.ByteLen())
	k[len(k)-1] = 0x42

	if err := g.Scalar(k); err != nil {
		t.Fatal(err)
	}
	if g.IsIdentity() {
		t.Fatal("0x42 * G should not be the identity")
	}
}
