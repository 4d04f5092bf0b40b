package curve

import (
	"errors"

	"github.com/nistweier/ecws/field"
)

// ErrPointNotOnCurve is returned when the coordinates passed to NewPoint do
// not satisfy the curve equation.
var ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

// ErrWrongLength is returned when a coordinate's byte slice does not match
// the curve's field byte length.
var ErrWrongLength = errors.New("curve: wrong coordinate length")

// ErrMismatchedContext is returned when two points from different Contexts
// are combined.
var ErrMismatchedContext = errors.New("curve: points belong to different curve contexts")

// Point is an elliptic curve point in Jacobian coordinates (X, Y, Z), bound
// to a *Context. The point at infinity is the canonical (1, 1, 0) in
// Montgomery form, matching ec_ws_new_point's convention for the affine
// (0, 0) marker.
type Point struct {
	ctx  *Context
	X, Y, Z *field.Element
}

// Identity returns the point at infinity for ctx.
func (c *Context) Identity() *Point {
	return &Point{
		ctx: c,
		X:   c.fc.One(),
		Y:   c.fc.One(),
		Z:   c.fc.NewElement(),
	}
}

// setIdentity overwrites p in place with the canonical point at infinity.
func (p *Point) setIdentity() {
	p.X = p.ctx.fc.One()
	p.Y = p.ctx.fc.One()
	p.Z = p.ctx.fc.NewElement()
}

// NewPoint builds a Point from big-endian affine coordinates x, y, each
// ctx's field byte length long. (0, 0) is accepted as the point at infinity,
// matching ec_ws_new_point. Any other coordinate pair must satisfy the
// curve equation y² = x³ − 3x + b, or ErrPointNotOnCurve is returned.
func NewPoint(ctx *Context, x, y []byte) (*Point, error) {
	if len(x) != ctx.byteLen || len(y) != ctx.byteLen {
		return nil, ErrWrongLength
	}

	if allZero(x) && allZero(y) {
		return ctx.Identity(), nil
	}

	fc := ctx.fc

	xe, err := fc.FromBytes(x)
	if err != nil {
		return nil, err
	}
	ye, err := fc.FromBytes(y)
	if err != nil {
		return nil, err
	}

	p := &Point{ctx: ctx, X: xe, Y: ye, Z: fc.One()}
	if !p.onCurve() {
		return nil, ErrPointNotOnCurve
	}

	return p, nil
}

// onCurve reports whether p (assumed affine, Z=1) satisfies y² = x³ − 3x + b.
func (p *Point) onCurve() bool {
	fc := p.ctx.fc
	wp := fc.NewWorkplace()

	lhs := fc.NewElement()
	wp.Square(lhs, p.Y)

	rhs := fc.NewElement()
	wp.Square(rhs, p.X)
	wp.Mul(rhs, rhs, p.X)

	threeX := fc.NewElement()
	threeX.Add(p.X, p.X)
	threeX.Add(threeX, p.X)

	rhs.Sub(rhs, threeX)
	rhs.Add(rhs, p.ctx.b)

	return lhs.Equal(rhs) == 1
}

func allZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// Zero scrubs p's coordinate limbs, for callers that want to erase a
// secret point's state before it is dropped.
func (p *Point) Zero() {
	p.X.Zero()
	p.Y.Zero()
	p.Z.Zero()
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.Z.IsZero() == 1
}

// Clone returns a deep copy of p.
func (p *Point) Clone() *Point {
	return &Point{
		ctx: p.ctx,
		X:   p.X.Clone(),
		Y:   p.Y.Clone(),
		Z:   p.Z.Clone(),
	}
}

// CopyFrom overwrites p with a copy of src. Both must share the same
// Context.
func (p *Point) CopyFrom(src *Point) error {
	if p.ctx != src.ctx {
		return ErrMismatchedContext
	}
	p.X = src.X.Clone()
	p.Y = src.Y.Clone()
	p.Z = src.Z.Clone()
	return nil
}

// Negate sets p = -p. The point at infinity negates to itself.
func (p *Point) Negate() error {
	if p.IsIdentity() {
		return nil
	}
	zero := p.ctx.fc.NewElement()
	negY := p.ctx.fc.NewElement()
	negY.Sub(zero, p.Y)
	p.Y = negY
	return nil
}

// Normalize converts p in place to affine coordinates (Z=1), leaving the
// point at infinity untouched.
func (p *Point) Normalize() error {
	if p.IsIdentity() {
		return nil
	}

	fc := p.ctx.fc
	wp := fc.NewWorkplace()

	zInv := fc.NewElement()
	zInv.Invert(p.Z)

	zInv2 := fc.NewElement()
	wp.Square(zInv2, zInv)

	x := fc.NewElement()
	wp.Mul(x, p.X, zInv2)

	zInv3 := fc.NewElement()
	wp.Mul(zInv3, zInv2, zInv)

	y := fc.NewElement()
	wp.Mul(y, p.Y, zInv3)

	p.X = x
	p.Y = y
	p.Z = fc.One()

	return nil
}

// Double sets p = 2*p.
func (p *Point) Double() error {
	wp := p.ctx.NewWorkplace()
	out := &Point{ctx: p.ctx}
	double(p.ctx.fc, wp.wp1, out, p)
	p.X, p.Y, p.Z = out.X, out.Y, out.Z
	return nil
}

// Add sets p = p + q.
func (p *Point) Add(q *Point) error {
	if p.ctx != q.ctx {
		return ErrMismatchedContext
	}
	wp := p.ctx.NewWorkplace()
	out := &Point{ctx: p.ctx}
	fullAdd(p.ctx.fc, wp.wp1, out, p, q)
	p.X, p.Y, p.Z = out.X, out.Y, out.Z
	return nil
}

// Cmp reports whether p and q are identical in Jacobian form (0) or not
// (non-zero): equal Z, and either both the point at infinity or equal raw X
// and Y. This is not a general affine-equivalence comparison — two
// representations of the same affine point with different Z compare
// unequal. Callers needing affine equivalence must Normalize both points
// first. Ported directly from ec_ws_cmp, which compares z, x, y without
// normalizing.
func (p *Point) Cmp(q *Point) (int, error) {
	if p.ctx != q.ctx {
		return 0, ErrMismatchedContext
	}

	if p.Z.Equal(q.Z) != 1 {
		return 1, nil
	}
	if p.Z.IsZero() == 1 {
		return 0, nil
	}
	if p.X.Equal(q.X) != 1 {
		return 1, nil
	}
	if p.Y.Equal(q.Y) != 1 {
		return 1, nil
	}
	return 0, nil
}

// GetXY writes p's affine coordinates into x and y (each ctx's field byte
// length long), without modifying p. The point at infinity is rendered as
// (0, 0), matching NewPoint's acceptance of that encoding.
func GetXY(x, y []byte, p *Point) error {
	if len(x) != p.ctx.byteLen || len(y) != p.ctx.byteLen {
		return ErrWrongLength
	}

	if p.IsIdentity() {
		for i := range x {
			x[i] = 0
		}
		for i := range y {
			y[i] = 0
		}
		return nil
	}

	affine := p.Clone()
	if err := affine.Normalize(); err != nil {
		return err
	}

	copy(x, affine.X.Bytes())
	copy(y, affine.Y.Bytes())

	return nil
}
