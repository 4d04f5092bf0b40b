package curve

import "github.com/nistweier/ecws/window"

// Scalar sets p = k*p, where k is a big-endian scalar exactly ctx.ByteLen
// bytes long. When p represents the context's declared generator (in any
// Jacobian form: IsGenerator normalizes a copy before comparing) and the
// context was built WithGeneratorTables, the fixed-window fast path is
// used; otherwise Scalar runs the generic always-double-always-add
// constant-time ladder (ec_exp).
func (p *Point) Scalar(k []byte) error {
	if len(k) != p.ctx.byteLen {
		return ErrWrongLength
	}

	if p.ctx.tables != nil && p.ctx.IsGenerator(p) {
		out := scalarMultGenerator(p.ctx, k)
		p.X, p.Y, p.Z = out.X, out.Y, out.Z
		return nil
	}

	out := scalarMultGeneric(p.ctx, p, k)
	p.X, p.Y, p.Z = out.X, out.Y, out.Z
	return nil
}

// scalarMultGeneric computes k*base via the constant-time always-double,
// always-add, always-select ladder, scanning k from its first set bit
// (public bit-length leak only, matching ec_exp's own leading-zero skip) to
// its last bit. wp1 backs the double/add primitives' temporaries; wp2's
// named A/B/C scratch elements back the running accumulator that the loop
// selects into on every iteration, per ec_ws.c's two-Workplace split.
func scalarMultGeneric(ctx *Context, base *Point, k []byte) *Point {
	fc := ctx.fc
	wp := ctx.NewWorkplace()

	bitLen := len(k) * 8
	firstSet := -1

outer:
	for i := 0; i < len(k); i++ {
		for b := 7; b >= 0; b-- {
			if k[i]&(1<<uint(b)) != 0 {
				firstSet = i*8 + (7 - b)
				break outer
			}
		}
	}

	if firstSet == -1 {
		return ctx.Identity()
	}

	acc := &Point{ctx: ctx, X: wp.wp2.A, Y: wp.wp2.B, Z: wp.wp2.C}
	acc.X.Copy(fc.One())
	acc.Y.Copy(fc.One())
	acc.Z.Set(0)

	for pos := firstSet; pos < bitLen; pos++ {
		byteIdx := pos / 8
		bitIdx := uint(7 - pos%8)
		bit := uint64((k[byteIdx] >> bitIdx) & 1)

		doubled := &Point{ctx: ctx}
		double(fc, wp.wp1, doubled, acc)

		added := &Point{ctx: ctx}
		fullAdd(fc, wp.wp1, added, doubled, base)

		wp.wp2.A.CMove(bit, added.X, doubled.X)
		wp.wp2.B.CMove(bit, added.Y, doubled.Y)
		wp.wp2.C.CMove(bit, added.Z, doubled.Z)
	}

	return acc.Clone()
}

// scalarMultGenerator computes k*G via the fixed-window comb method: each
// window's table is gathered at the secret digit (gather, not indexed
// access, so the cache access pattern is independent of the digit) and
// accumulated with mixed addition. No doubling is needed online since each
// table already holds that window's contribution pre-multiplied by its
// weight 2^(width*i).
func scalarMultGenerator(ctx *Context, k []byte) *Point {
	fc := ctx.fc
	wp := ctx.NewWorkplace()
	tables := ctx.tables

	acc := &Point{ctx: ctx, X: wp.wp2.A, Y: wp.wp2.B, Z: wp.wp2.C}
	acc.X.Copy(fc.One())
	acc.Y.Copy(fc.One())
	acc.Z.Set(0)

	cursor := window.NewRL(tables.width, k)

	for i := 0; i < len(tables.tables); i++ {
		digit := cursor.Next()

		entry := make([]byte, tables.tables[i].ArrayLen())
		tables.tables[i].Gather(entry, digit)

		half := len(entry) / 2
		xBytes, yBytes := entry[:half], entry[half:]

		xe, err := fc.FromBytes(xBytes)
		if err != nil {
			// Entry (0,0) marks infinity; FromBytes never fails on an
			// all-zero value, so a real error here means table corruption.
			panic("curve: malformed generator table entry")
		}
		ye, err := fc.FromBytes(yBytes)
		if err != nil {
			panic("curve: malformed generator table entry")
		}

		isInfinity := xe.IsZero() & ye.IsZero()

		added := &Point{ctx: ctx}
		mixedAdd(fc, wp.wp1, added, acc, xe, ye)

		wp.wp2.A.CMove(isInfinity, acc.X, added.X)
		wp.wp2.B.CMove(isInfinity, acc.Y, added.Y)
		wp.wp2.C.CMove(isInfinity, acc.Z, added.Z)
	}

	return acc.Clone()
}
