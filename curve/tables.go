package curve

import (
	"github.com/nistweier/ecws/curve/params"
	"github.com/nistweier/ecws/scatter"
)

// generatorTables holds one scatter.Table per fixed window of the
// generator fast path. Table i's entry d holds the affine encoding of
// d·G·2^(width*i), with entry 0 conventionally (0,0) (the point at
// infinity), matching the scatter-table layout the three make_p*_table.c
// generators in original_source/ build offline for P-256/P-384/P-521.
type generatorTables struct {
	tables []*scatter.Table
	width  uint
}

// buildGeneratorTables computes ctx's generator fast-path tables at
// construction time (rather than loading precompiled C arrays, as the
// original does), by repeated full addition and doubling from the curve's
// base point.
func buildGeneratorTables(ctx *Context, p params.Params, seed uint64) (*generatorTables, error) {
	fc := ctx.fc
	wp := ctx.NewWorkplace().wp1

	width := p.TableWindowBits
	bitLen := p.ByteLen * 8
	numWindows := int((uint(bitLen) + width - 1) / width)
	count := 1 << width
	entryLen := 2 * p.ByteLen

	tables := make([]*scatter.Table, numWindows)

	weight := ctx.g.Clone() // 2^(width*i) * G, starting at i=0

	for i := 0; i < numWindows; i++ {
		arrays := make([][]byte, count)
		arrays[0] = make([]byte, entryLen) // (0,0): point at infinity

		running := weight.Clone() // d * weight, starting at d=1
		arrays[1] = affineEntry(running, entryLen/2)

		for d := 2; d < count; d++ {
			next := &Point{ctx: ctx}
			fullAdd(fc, wp, next, running, weight)
			running = next
			arrays[d] = affineEntry(running, entryLen/2)
		}

		tbl, err := scatter.New(arrays, entryLen, seed+uint64(i))
		if err != nil {
			return nil, err
		}
		tables[i] = tbl

		if i != numWindows-1 {
			next := weight.Clone()
			for b := uint(0); b < width; b++ {
				out := &Point{ctx: ctx}
				double(fc, wp, out, next)
				next = out
			}
			weight = next
		}
	}

	return &generatorTables{tables: tables, width: width}, nil
}

// affineEntry normalizes p and renders it as a concatenated x||y byte pair,
// each coordByteLen bytes.
func affineEntry(p *Point, coordByteLen int) []byte {
	affine := p.Clone()
	_ = affine.Normalize()

	out := make([]byte, 2*coordByteLen)
	copy(out[:coordByteLen], affine.X.Bytes())
	copy(out[coordByteLen:], affine.Y.Bytes())

	return out
}
