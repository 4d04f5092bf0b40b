// Package curve implements constant-time elliptic curve point arithmetic
// in Jacobian coordinates for short Weierstrass curves y² = x³ − 3x + b
// over the primes field.Context supports, ported from pycryptodome's
// ec_ws.c. curve/params supplies the P-256/P-384/P-521 constant sets.
package curve

import (
	"errors"

	"github.com/nistweier/ecws/curve/params"
	"github.com/nistweier/ecws/field"
)

// ErrNoGeneratorTables is returned by operations that require the
// generator fast-path tables when a Context was built without them.
var ErrNoGeneratorTables = errors.New("curve: context has no generator tables")

// Context describes one curve: its field, the curve constant b (Montgomery
// form), the group order (big-endian plain bytes), the base point, and
// optionally the generator's fixed-window tables.
type Context struct {
	fc      *field.Context
	b       *field.Element
	order   []byte
	name    string
	byteLen int

	g      *Point
	tables *generatorTables
}

// config accumulates NewContext options.
type config struct {
	seed    uint64
	hasSeed bool
}

// Option configures NewContext.
type Option func(*config)

// WithGeneratorTables requests that NewContext precompute the generator's
// fixed-window tables, seeded with seed (fed through SipHash-2-4 scramble
// expansion — see scatter.New). Without this option, Scalar always falls
// back to the generic double-and-add path even when multiplying the base
// point.
func WithGeneratorTables(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// NewContext builds a Context from a curve's parameter set.
func NewContext(p params.Params, opts ...Option) (*Context, error) {
	fc, err := field.NewContext(p.Modulus)
	if err != nil {
		return nil, err
	}

	bEl, err := fc.FromBytes(p.B)
	if err != nil {
		return nil, err
	}

	order := make([]byte, len(p.Order))
	copy(order, p.Order)

	ctx := &Context{
		fc:      fc,
		b:       bEl,
		order:   order,
		name:    p.Name,
		byteLen: p.ByteLen,
	}

	gx, err := fc.FromBytes(p.Gx)
	if err != nil {
		return nil, err
	}
	gy, err := fc.FromBytes(p.Gy)
	if err != nil {
		return nil, err
	}

	g := &Point{ctx: ctx, X: gx, Y: gy, Z: fc.One()}
	if !g.onCurve() {
		return nil, ErrPointNotOnCurve
	}
	ctx.g = g

	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.hasSeed {
		tbl, err := buildGeneratorTables(ctx, p, cfg.seed)
		if err != nil {
			return nil, err
		}
		ctx.tables = tbl
	}

	return ctx, nil
}

// Name returns the curve's name (e.g. "P-256").
func (c *Context) Name() string { return c.name }

// ByteLen returns the field's byte length.
func (c *Context) ByteLen() int { return c.byteLen }

// Order returns a copy of the group order, big-endian, ByteLen bytes.
func (c *Context) Order() []byte {
	out := make([]byte, len(c.order))
	copy(out, c.order)
	return out
}

// Generator returns a fresh copy of the curve's base point.
func (c *Context) Generator() *Point {
	return c.g.Clone()
}

// Field returns the underlying field context, for callers that need raw
// field arithmetic (e.g. tests).
func (c *Context) Field() *field.Context { return c.fc }

// GeneratorTableWindowCount returns the number of fixed-window tables the
// generator fast path built, or ErrNoGeneratorTables if ctx was constructed
// without WithGeneratorTables.
func (c *Context) GeneratorTableWindowCount() (int, error) {
	if c.tables == nil {
		return 0, ErrNoGeneratorTables
	}
	return len(c.tables.tables), nil
}

// IsGenerator reports whether p represents the context's declared generator.
// Cmp alone compares raw Jacobian coordinates, so p is normalized to Z=1 on
// a working copy first — c.g itself is already stored affine.
func (c *Context) IsGenerator(p *Point) bool {
	if p.ctx != c {
		return false
	}
	affine := p.Clone()
	if err := affine.Normalize(); err != nil {
		return false
	}
	cmp, err := affine.Cmp(c.g)
	return err == nil && cmp == 0
}
