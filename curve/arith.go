package curve

import "github.com/nistweier/ecws/field"

// double sets dst = 2*p1 in Jacobian coordinates, for a curve with a = -3.
// Ported from ec_ws.c's ec_full_double: delta = Z1², gamma = Y1², beta =
// X1*gamma, alpha = 3*(X1-delta)*(X1+delta), then the usual dbl-2001-b
// combination. dst may alias p1. wp supplies the CIOS scratch buffer for
// the Mul/Square calls; it must belong to the same field.Context as p1.
func double(fc *field.Context, wp *field.Workplace, dst, p1 *Point) {
	delta := fc.NewElement()
	wp.Square(delta, p1.Z)

	gamma := fc.NewElement()
	wp.Square(gamma, p1.Y)

	beta := fc.NewElement()
	wp.Mul(beta, p1.X, gamma)

	xMinusDelta := fc.NewElement()
	xMinusDelta.Sub(p1.X, delta)
	xPlusDelta := fc.NewElement()
	xPlusDelta.Add(p1.X, delta)

	base := fc.NewElement()
	wp.Mul(base, xMinusDelta, xPlusDelta)
	alpha := fc.NewElement()
	alpha.Add(base, base)
	alpha.Add(alpha, base) // alpha = 3*(X1-delta)*(X1+delta)

	alphaSq := fc.NewElement()
	wp.Square(alphaSq, alpha)

	eightBeta := fc.NewElement()
	eightBeta.Add(beta, beta)
	eightBeta.Add(eightBeta, eightBeta)
	eightBeta.Add(eightBeta, eightBeta)

	x3 := fc.NewElement()
	x3.Sub(alphaSq, eightBeta)

	yPlusZ := fc.NewElement()
	yPlusZ.Add(p1.Y, p1.Z)
	yPlusZSq := fc.NewElement()
	wp.Square(yPlusZSq, yPlusZ)

	z3 := fc.NewElement()
	z3.Sub(yPlusZSq, gamma)
	z3.Sub(z3, delta)

	fourBeta := fc.NewElement()
	fourBeta.Add(beta, beta)
	fourBeta.Add(fourBeta, fourBeta)
	fourBetaMinusX3 := fc.NewElement()
	fourBetaMinusX3.Sub(fourBeta, x3)

	y3 := fc.NewElement()
	wp.Mul(y3, alpha, fourBetaMinusX3)

	gammaSq := fc.NewElement()
	wp.Square(gammaSq, gamma)
	eightGammaSq := fc.NewElement()
	eightGammaSq.Add(gammaSq, gammaSq)
	eightGammaSq.Add(eightGammaSq, eightGammaSq)
	eightGammaSq.Add(eightGammaSq, eightGammaSq)
	y3.Sub(y3, eightGammaSq)

	dst.X = x3
	dst.Y = y3
	dst.Z = z3
}

// mixedAdd sets dst = p1 + (x2, y2), where (x2, y2) is an affine point
// (implicit Z=1). Ported from ec_ws.c's ec_mix_add, including its two
// structural edge-case branches: these compare two *public-structure*
// coincidences (p1 == the affine point, or p1 == -affine point), not a
// secret scalar bit, exactly as the original accepts.
func mixedAdd(fc *field.Context, wp *field.Workplace, dst, p1 *Point, x2, y2 *field.Element) {
	if p1.IsIdentity() {
		dst.X = x2.Clone()
		dst.Y = y2.Clone()
		dst.Z = fc.One()
		return
	}

	z1z1 := fc.NewElement()
	wp.Square(z1z1, p1.Z)

	u2 := fc.NewElement()
	wp.Mul(u2, x2, z1z1)

	s2 := fc.NewElement()
	wp.Mul(s2, y2, p1.Z)
	wp.Mul(s2, s2, z1z1)

	h := fc.NewElement()
	h.Sub(u2, p1.X)

	if h.IsZero() == 1 {
		if s2.Equal(p1.Y) == 1 {
			double(fc, wp, dst, p1)
			return
		}
		dst.setIdentity()
		return
	}

	hh := fc.NewElement()
	wp.Square(hh, h)

	i := fc.NewElement()
	i.Add(hh, hh)
	i.Add(i, i)

	j := fc.NewElement()
	wp.Mul(j, h, i)

	r := fc.NewElement()
	r.Sub(s2, p1.Y)
	r.Add(r, r)

	v := fc.NewElement()
	wp.Mul(v, p1.X, i)

	x3 := fc.NewElement()
	wp.Square(x3, r)
	x3.Sub(x3, j)
	twoV := fc.NewElement()
	twoV.Add(v, v)
	x3.Sub(x3, twoV)

	vMinusX3 := fc.NewElement()
	vMinusX3.Sub(v, x3)
	y3 := fc.NewElement()
	wp.Mul(y3, r, vMinusX3)
	twoY1J := fc.NewElement()
	wp.Mul(twoY1J, p1.Y, j)
	twoY1J.Add(twoY1J, twoY1J)
	y3.Sub(y3, twoY1J)

	z3 := fc.NewElement()
	z3.Add(p1.Z, h)
	wp.Square(z3, z3)
	z3.Sub(z3, z1z1)
	z3.Sub(z3, hh)

	dst.X = x3
	dst.Y = y3
	dst.Z = z3
}

// fullAdd sets dst = p1 + p2, both in Jacobian coordinates. Ported from
// ec_ws.c's ec_full_add (add-2007-bl), with the same structural edge-case
// branches as mixedAdd.
func fullAdd(fc *field.Context, wp *field.Workplace, dst, p1, p2 *Point) {
	if p1.IsIdentity() {
		dst.CopyFrom(p2)
		return
	}
	if p2.IsIdentity() {
		dst.CopyFrom(p1)
		return
	}

	z1z1 := fc.NewElement()
	wp.Square(z1z1, p1.Z)
	z2z2 := fc.NewElement()
	wp.Square(z2z2, p2.Z)

	u1 := fc.NewElement()
	wp.Mul(u1, p1.X, z2z2)
	u2 := fc.NewElement()
	wp.Mul(u2, p2.X, z1z1)

	s1 := fc.NewElement()
	wp.Mul(s1, p1.Y, p2.Z)
	wp.Mul(s1, s1, z2z2)
	s2 := fc.NewElement()
	wp.Mul(s2, p2.Y, p1.Z)
	wp.Mul(s2, s2, z1z1)

	h := fc.NewElement()
	h.Sub(u2, u1)

	if h.IsZero() == 1 {
		if s2.Equal(s1) == 1 {
			double(fc, wp, dst, p1)
			return
		}
		dst.setIdentity()
		return
	}

	twoH := fc.NewElement()
	twoH.Add(h, h)
	i := fc.NewElement()
	wp.Square(i, twoH)

	j := fc.NewElement()
	wp.Mul(j, h, i)

	r := fc.NewElement()
	r.Sub(s2, s1)
	r.Add(r, r)

	v := fc.NewElement()
	wp.Mul(v, u1, i)

	x3 := fc.NewElement()
	wp.Square(x3, r)
	x3.Sub(x3, j)
	twoV := fc.NewElement()
	twoV.Add(v, v)
	x3.Sub(x3, twoV)

	vMinusX3 := fc.NewElement()
	vMinusX3.Sub(v, x3)
	y3 := fc.NewElement()
	wp.Mul(y3, r, vMinusX3)
	twoS1J := fc.NewElement()
	wp.Mul(twoS1J, s1, j)
	twoS1J.Add(twoS1J, twoS1J)
	y3.Sub(y3, twoS1J)

	zSum := fc.NewElement()
	zSum.Add(p1.Z, p2.Z)
	wp.Square(zSum, zSum)
	zSum.Sub(zSum, z1z1)
	zSum.Sub(zSum, z2z2)
	z3 := fc.NewElement()
	wp.Mul(z3, zSum, h)

	dst.X = x3
	dst.Y = y3
	dst.Z = z3
}
