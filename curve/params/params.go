// Package params carries the constant data describing each of the three
// NIST curves this module supports: the field prime, the curve constant b,
// the group order, and the canonical base point, all in fixed-length
// big-endian encoding. Each constructor mirrors one of pycryptodome's
// ec_ws_p256.c / ec_ws_p384.c / ec_ws_p521.c, which do nothing but supply a
// particular curve's constants to ec_ws_new_context.
package params

import (
	"fmt"
	"math/big"
)

// Params describes one short-Weierstrass curve y² = x³ − 3x + b over F_p.
type Params struct {
	Name string

	// Modulus, B, Order, Gx, Gy are big-endian, ByteLen bytes each.
	Modulus []byte
	B       []byte
	Order   []byte
	Gx      []byte
	Gy      []byte

	ByteLen int

	// TableWindowBits is the fixed window width (in bits) used for the
	// generator's precomputed-table fast path (w=5 for P-256/P-384, w=4
	// for P-521, per spec).
	TableWindowBits uint

	// TableWindowPlain records that pycryptodome's P-521 tables hold plain
	// (non-Montgomery) affine coordinates. The curve package does not read
	// it: every curve's generator table entries are stored as plain affine
	// bytes.
	TableWindowPlain bool
}

// hexBytes decodes a fixed-length hex constant. It panics on malformed
// compiled-in data, which is a build-time defect, never a runtime condition.
func hexBytes(s string, byteLen int) []byte {
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("params: invalid hex constant %q", s))
	}

	out := make([]byte, byteLen)
	b.FillBytes(out)

	return out
}

// P256 returns the parameters for the NIST P-256 curve.
func P256() Params {
	const byteLen = 32

	return Params{
		Name:            "P-256",
		Modulus:         hexBytes("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF", byteLen),
		B:               hexBytes("5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B", byteLen),
		Order:           hexBytes("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551", byteLen),
		Gx:              hexBytes("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296", byteLen),
		Gy:              hexBytes("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5", byteLen),
		ByteLen:         byteLen,
		TableWindowBits: 5,
	}
}

// P384 returns the parameters for the NIST P-384 curve.
func P384() Params {
	const byteLen = 48

	return Params{
		Name:    "P-384",
		Modulus: hexBytes("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFF", byteLen),
		B:       hexBytes("B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF", byteLen),
		Order:   hexBytes("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973", byteLen),
		Gx:      hexBytes("AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB7", byteLen),
		Gy:      hexBytes("3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F", byteLen),
		ByteLen: byteLen,

		TableWindowBits: 5,
	}
}

// P521 returns the parameters for the NIST P-521 curve.
func P521() Params {
	const byteLen = 66

	return Params{
		Name:    "P-521",
		Modulus: hexBytes("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", byteLen),
		B:       hexBytes("0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00", byteLen),
		Order:   hexBytes("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409", byteLen),
		Gx:      hexBytes("00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66", byteLen),
		Gy:      hexBytes("011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650", byteLen),
		ByteLen: byteLen,

		TableWindowBits:  4,
		TableWindowPlain: true,
	}
}
