package field

// Workplace holds a small set of named scratch elements, lettered A..C after
// the scratch variables ec_ws.c's Workplace keeps alive across a whole
// scalar multiplication (rather than the short-lived per-formula temporaries
// double/mixedAdd/fullAdd allocate themselves), plus the CIOS scratch buffer
// Mul/Square need. curve.Workplace uses A, B, C to back a ladder's running
// accumulator coordinates, which must survive from one loop iteration to the
// next. A Workplace shares one CIOS scratch buffer across its Mul/Square
// calls; the field and curve operations still allocate a fresh limb slice
// for each result they produce.
type Workplace struct {
	A, B, C    *Element
	mulScratch []uint64
}

// NewWorkplace allocates a Workplace bound to ctx.
func (c *Context) NewWorkplace() *Workplace {
	return &Workplace{
		A:          c.NewElement(),
		B:          c.NewElement(),
		C:          c.NewElement(),
		mulScratch: make([]uint64, 2*c.n+1),
	}
}

// Scratch returns the CIOS scratch buffer backing this Workplace's Mul/Square
// calls convenience wrappers.
func (w *Workplace) Scratch() []uint64 { return w.mulScratch }

// Mul is a convenience wrapper around e.Mul(a, b, scratch) using this
// Workplace's shared scratch buffer.
func (w *Workplace) Mul(e, a, b *Element) *Element {
	return e.Mul(a, b, w.mulScratch)
}

// Square is a convenience wrapper around e.Square(a, scratch) using this
// Workplace's shared scratch buffer.
func (w *Workplace) Square(e, a *Element) *Element {
	return e.Square(a, w.mulScratch)
}
