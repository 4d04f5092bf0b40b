package curve

import "github.com/nistweier/ecws/field"

// Workplace bundles the two field.Workplaces one scalar multiplication
// needs: wp1 backs the EC-primitive temporaries inside double/add, wp2
// backs the running accumulator pair compared and selected on every
// iteration of the main loop. Splitting them avoids the two call sites
// aliasing each other's scratch buffer. Mirrors ec_ws.c's Workplace /
// new_workplace, which keeps two sets of scratch elements for the same
// reason.
type Workplace struct {
	wp1 *field.Workplace
	wp2 *field.Workplace
}

// NewWorkplace allocates a Workplace for one scalar multiplication (or
// sequence of point operations) against ctx. A goroutine performing curve
// arithmetic concurrently with others must use its own Workplace; Context
// itself is read-only and safe to share.
func (c *Context) NewWorkplace() *Workplace {
	return &Workplace{
		wp1: c.fc.NewWorkplace(),
		wp2: c.fc.NewWorkplace(),
	}
}
