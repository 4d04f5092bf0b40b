// Package ecws is the public surface of this module: a constant-time
// elliptic-curve arithmetic engine for the short Weierstrass NIST curves
// P-256, P-384 and P-521, built on the Montgomery field arithmetic in
// package field. It exposes a thin, Go-idiomatic wrapper over package
// curve's types, returning error instead of a C-style status code at every
// boundary.
package ecws

import (
	"errors"
	"fmt"

	"github.com/nistweier/ecws/curve"
)

// Sentinel errors, checkable with errors.Is, one per abstract error kind.
var (
	// ErrNull names the null-argument error kind. No function in this
	// module returns it; nil arguments are not checked.
	ErrNull = errors.New("ecws: null argument")

	// ErrValue is returned when an argument's value is out of range (e.g. a
	// field element encoding not smaller than the modulus).
	ErrValue = errors.New("ecws: invalid value")

	// ErrECPoint is returned when coordinates do not describe a point on
	// the curve.
	ErrECPoint = errors.New("ecws: invalid EC point")

	// ErrECCurve is returned on a context mismatch between the operands of
	// a binary operation (e.g. Add/Cmp across two curve contexts).
	ErrECCurve = errors.New("ecws: invalid EC curve parameters")

	// ErrMemory names the allocation-failure error kind. No function in
	// this module returns it; wrap reports a failed generator-table
	// construction as ErrValue.
	ErrMemory = errors.New("ecws: allocation failure")

	// ErrNotEnoughData is returned when a byte buffer's length does not
	// match the curve's field byte length (too short or too long).
	ErrNotEnoughData = errors.New("ecws: not enough data")
)

// wrap maps a lower-level curve/field error into one of this package's
// sentinels, preserving the original error via %w for errors.Is/errors.As.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, curve.ErrPointNotOnCurve):
		return fmt.Errorf("%w: %v", ErrECPoint, err)
	case errors.Is(err, curve.ErrWrongLength):
		return fmt.Errorf("%w: %v", ErrNotEnoughData, err)
	case errors.Is(err, curve.ErrMismatchedContext):
		return fmt.Errorf("%w: %v", ErrECCurve, err)
	case errors.Is(err, curve.ErrNoGeneratorTables):
		return fmt.Errorf("%w: %v", ErrValue, err)
	default:
		return fmt.Errorf("%w: %v", ErrValue, err)
	}
}
