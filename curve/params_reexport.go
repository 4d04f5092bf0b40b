package curve

import "github.com/nistweier/ecws/curve/params"

// Params describes one curve's constants; see package curve/params.
type Params = params.Params

// P256 returns the NIST P-256 parameter set.
func P256() Params { return params.P256() }

// P384 returns the NIST P-384 parameter set.
func P384() Params { return params.P384() }

// P521 returns the NIST P-521 parameter set.
func P521() Params { return params.P521() }
