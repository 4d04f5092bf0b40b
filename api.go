package ecws

import "github.com/nistweier/ecws/curve"

// NewContext builds a curve context from a parameter set (curve.P256,
// curve.P384, curve.P521), optionally precomputing the generator's
// fixed-window tables via curve.WithGeneratorTables.
func NewContext(p curve.Params, opts ...curve.Option) (*curve.Context, error) {
	ctx, err := curve.NewContext(p, opts...)
	if err != nil {
		return nil, wrap(err)
	}
	return ctx, nil
}

// NewPoint builds a point from big-endian affine coordinates, each
// ctx.ByteLen() bytes long. (0, 0) is accepted as the point at infinity.
func NewPoint(x, y []byte, ctx *curve.Context) (*curve.Point, error) {
	p, err := curve.NewPoint(ctx, x, y)
	if err != nil {
		return nil, wrap(err)
	}
	return p, nil
}

// GetXY writes p's affine coordinates into x and y, each ctx's field byte
// length long.
func GetXY(x, y []byte, p *curve.Point) error {
	return wrap(curve.GetXY(x, y, p))
}
