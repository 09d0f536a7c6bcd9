package typeguard

import "typeguard/internal/rawops"

// ops is the one-time capture of the primitive operations every predicate
// is built on. Read-only after init.
var ops = rawops.Capture()

// IsBound reports whether x is a finite number that respects the given
// inclusive bounds. Bounds are positional: IsBound(x) checks finiteness
// only, IsBound(x, min) adds a lower bound, IsBound(x, min, max) bounds
// both ends. A bound passed as NaN or ±Inf is not enforced — pass NaN as
// min to bound max alone — but when no bound is finite the bounds must
// have been omitted entirely, so IsBound(5, math.NaN()) is false while
// IsBound(5) is true. More than two bounds is a malformed call and yields
// false.
func IsBound(x any, bounds ...float64) bool {
	f, ok := ops.Float(x)
	if !ok || !ops.Finite(f) {
		return false
	}
	return inBounds(f, bounds)
}

// inBounds applies the positional bound rules of IsBound to an
// already-extracted finite value.
func inBounds(f float64, bounds []float64) bool {
	if len(bounds) > 2 {
		return false
	}
	enforced := false
	if len(bounds) >= 1 && ops.Finite(bounds[0]) {
		enforced = true
		if f < bounds[0] {
			return false
		}
	}
	if len(bounds) == 2 && ops.Finite(bounds[1]) {
		enforced = true
		if f > bounds[1] {
			return false
		}
	}
	return enforced || len(bounds) == 0
}
